package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/pkg/migration"
)

func init() {
	migration.Register("20250901000000_create_products_table", &CreateProductsTable{})
}

// productsV1 freezes the table shape at the time of this migration, so later
// edits to models.Product do not rewrite history.
type productsV1 struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       *string         `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productsV1) TableName() string { return "products" }

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&productsV1{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}
