package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"marketplace/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

// Dataset - сырые сид-записи в том виде, в каком они лежат в YAML
type Dataset struct {
	Users  []models.NewUser  `yaml:"users"`
	Offers []models.NewOffer `yaml:"offers"`
	Orders []models.NewOrder `yaml:"orders"`
}

// Batch - сид-записи, приведенные к сущностям
type Batch struct {
	Users  []models.User
	Offers []models.Offer
	Orders []models.Order
}

// Default возвращает встроенный набор данных
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

// LoadFile читает набор данных из YAML-файла
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML. Неизвестные ключи - ошибка.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed data is empty")
		}
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return &ds, nil
}

// Build проверяет все записи и конвертирует их в сущности.
// Любая ошибка (нет поля, дата не MM/DD/YYYY) фатальна для всего набора.
func (ds *Dataset) Build() (*Batch, error) {
	b := &Batch{
		Users:  make([]models.User, 0, len(ds.Users)),
		Offers: make([]models.Offer, 0, len(ds.Offers)),
		Orders: make([]models.Order, 0, len(ds.Orders)),
	}

	for i, u := range ds.Users {
		if err := models.Validate(u); err != nil {
			return nil, fmt.Errorf("users[%d]: %w", i, err)
		}
		b.Users = append(b.Users, u.ToModel())
	}

	for i, o := range ds.Offers {
		if err := models.Validate(o); err != nil {
			return nil, fmt.Errorf("offers[%d]: %w", i, err)
		}
		b.Offers = append(b.Offers, o.ToModel())
	}

	for i, o := range ds.Orders {
		if err := models.Validate(o); err != nil {
			return nil, fmt.Errorf("orders[%d]: %w", i, err)
		}
		order, err := o.ToModel()
		if err != nil {
			return nil, fmt.Errorf("orders[%d]: %w", i, err)
		}
		b.Orders = append(b.Orders, order)
	}

	return b, nil
}
