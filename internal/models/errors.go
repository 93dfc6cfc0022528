package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("ocorreu um erro no servidor durante a sua requisição")
	ErrResourceNotFound = errors.New("registro não encontrado")
)
