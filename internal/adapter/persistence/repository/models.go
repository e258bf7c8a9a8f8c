package repository

import (
	"time"

	"casamenteiro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// gorm models mirroring the marketplace schema. Table and column names keep
// the historical Portuguese identifiers; the domain entities speak English.

type PersonModel struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:nome;not null"`
	Email     string    `gorm:"column:email;not null;uniqueIndex"`
	Phone     string    `gorm:"column:telefone"`
	Role      string    `gorm:"column:perfil;not null"`
	CreatedAt time.Time `gorm:"column:data_cadastro;autoCreateTime"`
}

func (PersonModel) TableName() string { return "usuario" }

// SupplierProfileModel shares its primary key with usuario: the historical
// supplier-is-a-user split kept as a storage detail.
type SupplierProfileModel struct {
	PersonID    uint   `gorm:"column:id;primaryKey"`
	CompanyName string `gorm:"column:nome_empresa;not null"`
	CNPJ        string `gorm:"column:cnpj;not null;uniqueIndex"`
	Description string `gorm:"column:descricao"`
	Verified    bool   `gorm:"column:verificado;not null;default:false"`
}

func (SupplierProfileModel) TableName() string { return "fornecedor" }

type CoupleModel struct {
	ID           uint       `gorm:"column:id;primaryKey"`
	EngagedAID   uint       `gorm:"column:id_noivo1;not null"`
	EngagedBID   *uint      `gorm:"column:id_noivo2"`
	CeremonyDate *time.Time `gorm:"column:data_casamento"`
	CeremonyCity string     `gorm:"column:local_previsto"`
	GuestCount   *int       `gorm:"column:numero_convidados"`
	BudgetBand   string     `gorm:"column:orcamento_estimado"`
	CreatedAt    time.Time  `gorm:"column:data_cadastro;autoCreateTime"`
}

func (CoupleModel) TableName() string { return "casal" }

type CategoryModel struct {
	ID             uint   `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:nome;not null"`
	NormalizedName string `gorm:"column:nome_normalizado;not null;index:idx_categoria_nome_tipo,unique"`
	SupplyType     string `gorm:"column:tipo_fornecimento;not null;index:idx_categoria_nome_tipo,unique"`
	Description    string `gorm:"column:descricao"`
	Active         bool   `gorm:"column:ativo;not null;default:true"`
}

func (CategoryModel) TableName() string { return "categoria" }

type CatalogItemModel struct {
	ID           uint            `gorm:"column:id;primaryKey"`
	SupplierID   uint            `gorm:"column:id_fornecedor;not null;index"`
	SupplyType   string          `gorm:"column:tipo;not null"`
	CategoryID   uint            `gorm:"column:id_categoria;not null;index"`
	Name         string          `gorm:"column:nome;not null"`
	Description  string          `gorm:"column:descricao"`
	UnitPrice    decimal.Decimal `gorm:"column:preco;type:decimal(10,2);not null"`
	Observations string          `gorm:"column:observacoes"`
	Active       bool            `gorm:"column:ativo;not null;default:true"`
	CreatedAt    time.Time       `gorm:"column:data_cadastro;autoCreateTime"`
}

func (CatalogItemModel) TableName() string { return "item" }

type DemandModel struct {
	ID               uint             `gorm:"column:id;primaryKey"`
	CoupleID         uint             `gorm:"column:id_casal;not null;index"`
	Description      string           `gorm:"column:descricao;not null"`
	TotalBudget      *decimal.Decimal `gorm:"column:orcamento_total;type:decimal(10,2)"`
	DeliveryDeadline string           `gorm:"column:prazo_entrega"`
	Status           string           `gorm:"column:status;not null;default:'ATIVA';index"`
	Observations     string           `gorm:"column:observacoes"`
	CreatedAt        time.Time        `gorm:"column:data_criacao;autoCreateTime"`
}

func (DemandModel) TableName() string { return "demanda" }

type DemandItemModel struct {
	ID           uint             `gorm:"column:id;primaryKey"`
	DemandID     uint             `gorm:"column:id_demanda;not null;index"`
	SupplyType   string           `gorm:"column:tipo;not null"`
	CategoryID   uint             `gorm:"column:id_categoria;not null;index"`
	Description  string           `gorm:"column:descricao;not null"`
	Quantity     int              `gorm:"column:quantidade;not null;default:1"`
	MaxPrice     *decimal.Decimal `gorm:"column:preco_maximo;type:decimal(10,2)"`
	Observations string           `gorm:"column:observacoes"`
}

func (DemandItemModel) TableName() string { return "item_demanda" }

type QuoteModel struct {
	ID           uint            `gorm:"column:id;primaryKey"`
	DemandID     uint            `gorm:"column:id_demanda;not null;index"`
	SupplierID   uint            `gorm:"column:id_fornecedor;not null;index"`
	Validity     *time.Time      `gorm:"column:data_hora_validade"`
	Observations string          `gorm:"column:observacoes"`
	Status       string          `gorm:"column:status;not null;default:'PENDENTE';index"`
	TotalValue   decimal.Decimal `gorm:"column:valor_total;type:decimal(10,2);not null"`
	CreatedAt    time.Time       `gorm:"column:data_hora_cadastro;autoCreateTime"`
}

func (QuoteModel) TableName() string { return "orcamento" }

type QuoteItemModel struct {
	ID              uint             `gorm:"column:id;primaryKey"`
	QuoteID         uint             `gorm:"column:id_orcamento;not null;index:idx_item_orcamento_linha,unique"`
	DemandItemID    uint             `gorm:"column:id_item_demanda;not null;index:idx_item_orcamento_linha,unique;index"`
	CatalogItemID   uint             `gorm:"column:id_item;not null"`
	Quantity        int              `gorm:"column:quantidade;not null;default:1"`
	UnitPrice       decimal.Decimal  `gorm:"column:preco_unitario;type:decimal(10,2);not null"`
	Discount        *decimal.Decimal `gorm:"column:desconto;type:decimal(10,2)"`
	Observations    string           `gorm:"column:observacoes"`
	Status          string           `gorm:"column:status;not null;default:'PENDENTE'"`
	RejectionReason string           `gorm:"column:motivo_rejeicao"`
}

func (QuoteItemModel) TableName() string { return "item_orcamento" }

// entity <-> model mappers

func toPersonEntity(m PersonModel) entities.Person {
	return entities.Person{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      entities.Role(m.Role),
		CreatedAt: m.CreatedAt,
	}
}

func toCoupleEntity(m CoupleModel) entities.Couple {
	return entities.Couple{
		ID:           m.ID,
		EngagedAID:   m.EngagedAID,
		EngagedBID:   m.EngagedBID,
		CeremonyDate: m.CeremonyDate,
		CeremonyCity: m.CeremonyCity,
		GuestCount:   m.GuestCount,
		BudgetBand:   m.BudgetBand,
		CreatedAt:    m.CreatedAt,
	}
}

func toCategoryEntity(m CategoryModel) entities.Category {
	return entities.Category{
		ID:          m.ID,
		Name:        m.Name,
		SupplyType:  entities.SupplyType(m.SupplyType),
		Description: m.Description,
		Active:      m.Active,
	}
}

func toCatalogItemEntity(m CatalogItemModel) entities.CatalogItem {
	return entities.CatalogItem{
		ID:           m.ID,
		SupplierID:   m.SupplierID,
		SupplyType:   entities.SupplyType(m.SupplyType),
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		UnitPrice:    m.UnitPrice,
		Observations: m.Observations,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

func toDemandEntity(m DemandModel) entities.Demand {
	return entities.Demand{
		ID:               m.ID,
		CoupleID:         m.CoupleID,
		Description:      m.Description,
		TotalBudget:      m.TotalBudget,
		DeliveryDeadline: m.DeliveryDeadline,
		Status:           entities.DemandStatus(m.Status),
		Observations:     m.Observations,
		CreatedAt:        m.CreatedAt,
	}
}

func toDemandItemEntity(m DemandItemModel) entities.DemandItem {
	return entities.DemandItem{
		ID:           m.ID,
		DemandID:     m.DemandID,
		SupplyType:   entities.SupplyType(m.SupplyType),
		CategoryID:   m.CategoryID,
		Description:  m.Description,
		Quantity:     m.Quantity,
		MaxPrice:     m.MaxPrice,
		Observations: m.Observations,
	}
}

func toQuoteEntity(m QuoteModel) entities.Quote {
	return entities.Quote{
		ID:           m.ID,
		DemandID:     m.DemandID,
		SupplierID:   m.SupplierID,
		Validity:     m.Validity,
		Observations: m.Observations,
		Status:       entities.QuoteStatus(m.Status),
		TotalValue:   m.TotalValue,
		CreatedAt:    m.CreatedAt,
	}
}

func toQuoteItemEntity(m QuoteItemModel) entities.QuoteItem {
	return entities.QuoteItem{
		ID:              m.ID,
		QuoteID:         m.QuoteID,
		DemandItemID:    m.DemandItemID,
		CatalogItemID:   m.CatalogItemID,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		Discount:        m.Discount,
		Observations:    m.Observations,
		Status:          entities.QuoteItemStatus(m.Status),
		RejectionReason: m.RejectionReason,
	}
}
