package v1

import (
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"mes" binding:"required" example:"Agosto"` // Month label
}

type URIUnitName struct {
	Name string `uri:"nome" binding:"required" example:"SEAD - Secretaria de Administração"` // Name of the unit
}

type URISearchTerm struct {
	Term string `uri:"termo" binding:"required" example:"SEAD"` // Part of a unit name
}
