package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrgTypeONG         = "ong"
	OrgTypeAssociacao  = "associacao"
	OrgTypeFundacao    = "fundacao"
	OrgTypeCooperativa = "cooperativa"
	OrgTypeOutra       = "outra"
)

type Organization struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name             string    `gorm:"not null;column:name" json:"name"`
	OrganizationType string    `gorm:"not null;column:organization_type" json:"organization_type"`
	Email            string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Phone            string    `gorm:"column:phone" json:"phone,omitempty"`
	Whatsapp         string    `gorm:"column:whatsapp" json:"whatsapp,omitempty"`
	CNPJ             string    `gorm:"column:cnpj" json:"cnpj,omitempty"`
	Description      string    `gorm:"column:description" json:"description,omitempty"`
	Website          string    `gorm:"column:website" json:"website,omitempty"`
	Address          string    `gorm:"column:address" json:"address,omitempty"`
	City             string    `gorm:"column:city" json:"city,omitempty"`
	State            string    `gorm:"column:state" json:"state,omitempty"`
	ZipCode          string    `gorm:"column:zip_code" json:"zip_code,omitempty"`
	FoundationYear   *int      `gorm:"column:foundation_year" json:"foundation_year,omitempty"`
	EmployeesCount   *int      `gorm:"column:employees_count" json:"employees_count,omitempty"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Organization) TableName() string { return "organization" }
