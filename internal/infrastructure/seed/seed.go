package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Loader bootstraps reference data from JSON files on startup. Every record
// is keyed by a natural identifier (email, CNPJ, name+type, supplier+name),
// so running the loader twice leaves the database unchanged.
type Loader struct {
	persons      interfaces.IPersonRepository
	couples      interfaces.ICoupleRepository
	categories   interfaces.ICategoryRepository
	catalogItems interfaces.ICatalogItemRepository
}

func NewLoader(
	persons interfaces.IPersonRepository,
	couples interfaces.ICoupleRepository,
	categories interfaces.ICategoryRepository,
	catalogItems interfaces.ICatalogItemRepository,
) *Loader {
	return &Loader{persons: persons, couples: couples, categories: categories, catalogItems: catalogItems}
}

type categorySeed struct {
	Name        string `json:"nome"`
	SupplyType  string `json:"tipo_fornecimento"`
	Description string `json:"descricao"`
}

type supplierSeed struct {
	Name        string `json:"nome"`
	Email       string `json:"email"`
	Phone       string `json:"telefone"`
	CompanyName string `json:"nome_empresa"`
	CNPJ        string `json:"cnpj"`
	Description string `json:"descricao"`
}

type coupleSeed struct {
	EngagedA     personSeed `json:"noivo1"`
	EngagedB     personSeed `json:"noivo2"`
	CeremonyCity string     `json:"local_previsto"`
	GuestCount   *int       `json:"numero_convidados"`
	BudgetBand   string     `json:"orcamento_estimado"`
}

type personSeed struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

type catalogItemSeed struct {
	SupplierCNPJ string          `json:"cnpj_fornecedor"`
	SupplyType   string          `json:"tipo"`
	CategoryName string          `json:"categoria"`
	Name         string          `json:"nome"`
	Description  string          `json:"descricao"`
	UnitPrice    decimal.Decimal `json:"preco"`
	Observations string          `json:"observacoes"`
}

// Run loads every seed file found under dir, in dependency order. Missing
// files are skipped so partial seed sets work.
func (l *Loader) Run(ctx context.Context, dir string) error {
	if err := l.loadCategories(ctx, filepath.Join(dir, "categorias.json")); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := l.loadSuppliers(ctx, filepath.Join(dir, "fornecedores.json")); err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}
	if err := l.loadCouples(ctx, filepath.Join(dir, "casais.json")); err != nil {
		return fmt.Errorf("seed couples: %w", err)
	}
	if err := l.loadCatalogItems(ctx, filepath.Join(dir, "itens.json")); err != nil {
		return fmt.Errorf("seed catalog items: %w", err)
	}
	return nil
}

func (l *Loader) loadCategories(ctx context.Context, path string) error {
	var seeds []categorySeed
	ok, err := readSeedFile(path, &seeds)
	if err != nil || !ok {
		return err
	}

	for _, s := range seeds {
		existing, err := l.categories.GetByNormalizedName(ctx, s.Name, entities.SupplyType(s.SupplyType))
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			continue
		}
		_, err = l.categories.Create(ctx, entities.Category{
			Name:        s.Name,
			SupplyType:  entities.SupplyType(s.SupplyType),
			Description: s.Description,
			Active:      true,
		})
		if err != nil {
			return err
		}
	}
	log.Printf("seed: %d categories processed", len(seeds))
	return nil
}

func (l *Loader) loadSuppliers(ctx context.Context, path string) error {
	var seeds []supplierSeed
	ok, err := readSeedFile(path, &seeds)
	if err != nil || !ok {
		return err
	}

	for _, s := range seeds {
		existing, err := l.persons.GetSupplierByCNPJ(ctx, s.CNPJ)
		if err != nil {
			return err
		}
		if existing.Person.ID != 0 {
			continue
		}
		_, err = l.persons.CreateSupplier(ctx, entities.Supplier{
			Person: entities.Person{Name: s.Name, Email: s.Email, Phone: s.Phone},
			Profile: entities.SupplierProfile{
				CompanyName: s.CompanyName,
				CNPJ:        s.CNPJ,
				Description: s.Description,
			},
		})
		if err != nil {
			return err
		}
	}
	log.Printf("seed: %d suppliers processed", len(seeds))
	return nil
}

func (l *Loader) loadCouples(ctx context.Context, path string) error {
	var seeds []coupleSeed
	ok, err := readSeedFile(path, &seeds)
	if err != nil || !ok {
		return err
	}

	for _, s := range seeds {
		a, err := l.ensureEngaged(ctx, s.EngagedA)
		if err != nil {
			return err
		}
		b, err := l.ensureEngaged(ctx, s.EngagedB)
		if err != nil {
			return err
		}

		bound, err := l.couples.GetByMember(ctx, a.ID)
		if err != nil {
			return err
		}
		if bound.ID != 0 {
			continue
		}

		couple := entities.Couple{
			EngagedAID:   a.ID,
			CeremonyCity: s.CeremonyCity,
			GuestCount:   s.GuestCount,
			BudgetBand:   s.BudgetBand,
		}
		if b.ID != 0 {
			couple.EngagedBID = &b.ID
		}
		if _, err := l.couples.Create(ctx, couple); err != nil {
			return err
		}
	}
	log.Printf("seed: %d couples processed", len(seeds))
	return nil
}

func (l *Loader) ensureEngaged(ctx context.Context, s personSeed) (entities.Person, error) {
	if s.Email == "" {
		return entities.Person{}, nil
	}
	existing, err := l.persons.GetByEmail(ctx, s.Email)
	if err != nil {
		return entities.Person{}, err
	}
	if existing.ID != 0 {
		return existing, nil
	}
	return l.persons.Create(ctx, entities.Person{
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
		Role:  entities.RoleEngaged,
	})
}

func (l *Loader) loadCatalogItems(ctx context.Context, path string) error {
	var seeds []catalogItemSeed
	ok, err := readSeedFile(path, &seeds)
	if err != nil || !ok {
		return err
	}

	for _, s := range seeds {
		supplier, err := l.persons.GetSupplierByCNPJ(ctx, s.SupplierCNPJ)
		if err != nil {
			return err
		}
		if supplier.Person.ID == 0 {
			return fmt.Errorf("catalog item %q references unknown supplier cnpj %s", s.Name, s.SupplierCNPJ)
		}

		category, err := l.categories.GetByNormalizedName(ctx, s.CategoryName, entities.SupplyType(s.SupplyType))
		if err != nil {
			return err
		}
		if category.ID == 0 {
			return fmt.Errorf("catalog item %q references unknown category %s/%s", s.Name, s.CategoryName, s.SupplyType)
		}

		existing, err := l.catalogItems.GetBySupplierAndName(ctx, supplier.Person.ID, s.Name)
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			continue
		}

		_, err = l.catalogItems.Create(ctx, entities.CatalogItem{
			SupplierID:   supplier.Person.ID,
			SupplyType:   entities.SupplyType(s.SupplyType),
			CategoryID:   category.ID,
			Name:         s.Name,
			Description:  s.Description,
			UnitPrice:    s.UnitPrice,
			Observations: s.Observations,
			Active:       true,
		})
		if err != nil {
			return err
		}
	}
	log.Printf("seed: %d catalog items processed", len(seeds))
	return nil
}

// readSeedFile reads and decodes path into v; a missing file reports
// ok=false with no error.
func readSeedFile(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return true, nil
}
