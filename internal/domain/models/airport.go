package models

type IATACode string

type Airport struct {
	Code IATACode `json:"code" yaml:"code"`
	Name string   `json:"name" yaml:"name"`
}
