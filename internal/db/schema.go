package db

import _ "embed"

//go:embed schema.sql
var schema string

// Schema returns the DDL for the posts table. It is printed for operators by
// `goposts schema`; the server never applies it.
func Schema() string {
	return schema
}
