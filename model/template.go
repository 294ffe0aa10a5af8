package model

type Template struct {
	Id   uint32 `storm:"id,increment"`
	Name string `storm:"unique"`
	Body string
}
