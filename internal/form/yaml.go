package form

import (
	"fmt"
	"io"

	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/schema"
	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a filled in form.
//
//	nome_unidade: SEAD - Secretaria de Administração
//	nome_solicitante: Maria Souza
//	meses:
//	  Agosto:
//	    - nome: Reunião de planejamento
//	      quantidade_pessoas: 40
//	      almoco: true
type File struct {
	Unit      string                            `yaml:"nome_unidade"`
	Requester string                            `yaml:"nome_solicitante"`
	Months    map[string][]schema.EventEditable `yaml:"meses"`
}

// LoadYAML reads a form file into a new session.
//
// Every month listed in the file is marked as having events, even with an empty list,
// so that validation reports it.
func LoadYAML(r io.Reader) (*Session, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading form file: %w", err)
	}

	for label := range f.Months {
		if _, err := types.ParseMonth(label); err != nil {
			return nil, err
		}
	}

	s := NewSession()
	s.SetUnit(f.Unit)
	s.SetRequester(f.Requester)

	for _, month := range types.Months {
		events, ok := f.Months[month.String()]
		if !ok {
			continue
		}

		if err := s.SetHasEvents(month, true); err != nil {
			return nil, err
		}

		for _, e := range events {
			if _, err := s.AddEvent(month, e); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}
