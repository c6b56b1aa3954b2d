package domain

import "strings"

// sortColumns maps API sort fields to store columns. Anything outside this
// set is rejected before reaching the query builder.
var sortColumns = map[string]string{
	"id":             "id",
	"descricao":      "descricao",
	"valor":          "valor",
	"dataVencimento": "data_vencimento",
	"dataPagamento":  "data_pagamento",
}

// ParseSort parses a "campo" or "campo,asc|desc" sort spec into a store
// column and direction. An empty spec sorts by data_vencimento ascending.
func ParseSort(spec string) (column string, descending bool, err error) {
	if spec == "" {
		return "data_vencimento", false, nil
	}

	field := spec
	if idx := strings.IndexByte(spec, ','); idx >= 0 {
		field = spec[:idx]
		switch strings.ToLower(strings.TrimSpace(spec[idx+1:])) {
		case "asc":
		case "desc":
			descending = true
		default:
			return "", false, ErrInvalidSort
		}
	}

	column, ok := sortColumns[strings.TrimSpace(field)]
	if !ok {
		return "", false, ErrInvalidSort
	}
	return column, descending, nil
}
