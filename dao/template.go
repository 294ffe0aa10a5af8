package dao

import (
	"github.com/dilshat/campaign-sender/model"
)

type TemplateDao interface {
	//Create creates a template record and returns its id
	Create(name, body string) (uint32, error)
	//Update replaces name and body of the template with the given id
	Update(id uint32, name, body string) error
	//Delete removes the template with the given id
	Delete(id uint32) error
	//GetOneById returns template by id
	GetOneById(id uint32) (model.Template, error)
	//GetOneByName returns template by its unique name
	GetOneByName(name string) (model.Template, error)
	//GetAll returns all templates ordered by name
	GetAll() ([]model.Template, error)
}

func NewTemplateDao(db Db) TemplateDao {
	return &templateDao{db: db}
}

type templateDao struct {
	db Db
}

func (d templateDao) Create(name, body string) (uint32, error) {
	tmpl := &model.Template{Name: name, Body: body}
	err := d.db.Save(tmpl)
	return tmpl.Id, err
}

func (d templateDao) Update(id uint32, name, body string) error {
	var tmpl model.Template
	err := d.db.One("Id", id, &tmpl)
	if err != nil {
		return err
	}
	tmpl.Name = name
	tmpl.Body = body
	return d.db.Update(&tmpl)
}

func (d templateDao) Delete(id uint32) error {
	var tmpl model.Template
	err := d.db.One("Id", id, &tmpl)
	if err != nil {
		return err
	}
	return d.db.DeleteStruct(&tmpl)
}

func (d templateDao) GetOneById(id uint32) (tmpl model.Template, err error) {
	err = d.db.One("Id", id, &tmpl)
	return
}

func (d templateDao) GetOneByName(name string) (tmpl model.Template, err error) {
	err = d.db.One("Name", name, &tmpl)
	return
}

func (d templateDao) GetAll() ([]model.Template, error) {
	var templates []model.Template
	err := d.db.Select().OrderBy("Name").Find(&templates)
	if err != nil && err.Error() == "not found" {
		return []model.Template{}, nil
	}
	return templates, err
}
