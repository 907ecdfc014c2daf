// Package seed loads the embedded demo fixtures into an empty customer
// store on first start.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/linneanarhi/internal-dashboard/internal/domain/entities"
	"github.com/linneanarhi/internal-dashboard/internal/usecase/interfaces"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Customers []seedCustomer `yaml:"customers"`
}

type seedCustomer struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Email      string   `yaml:"email"`
	CompanyID  int      `yaml:"company_id"`
	CreatedAt  string   `yaml:"created_at"`
	Products   []string `yaml:"products"`
	UsersCount int      `yaml:"users_count"`
}

// Customers parses the embedded fixture file.
func Customers() ([]entities.Customer, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	out := make([]entities.Customer, 0, len(f.Customers))
	for _, sc := range f.Customers {
		createdAt, err := time.Parse("2006-01-02", sc.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("seed customer %s: bad created_at %q: %w", sc.ID, sc.CreatedAt, err)
		}
		products := make([]entities.Product, 0, len(sc.Products))
		for _, p := range sc.Products {
			products = append(products, entities.Product(p))
		}
		out = append(out, entities.Customer{
			ID:         sc.ID,
			Name:       sc.Name,
			Email:      sc.Email,
			CompanyID:  sc.CompanyID,
			CreatedAt:  createdAt,
			Products:   products,
			UsersCount: sc.UsersCount,
			Stage:      entities.StageNew,
		})
	}
	return out, nil
}

// Apply inserts the fixtures into the store unless it already holds
// data, e.g. restored from the blob cache.
func Apply(customers interfaces.ICustomerStore) error {
	if len(customers.Snapshot()) > 0 {
		return nil
	}
	fixtures, err := Customers()
	if err != nil {
		return err
	}
	// Upsert prepends, so walk backwards to keep file order on display.
	for i := len(fixtures) - 1; i >= 0; i-- {
		customers.Upsert(fixtures[i])
	}
	return nil
}
