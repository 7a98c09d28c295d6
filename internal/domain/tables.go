package domain

var Tables = []interface{}{
	&Category{},
	&Product{},
	&Request{},
}
