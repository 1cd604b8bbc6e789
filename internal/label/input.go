package label

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Department selects the label template.
type Department int

const (
	DepartmentUnspecified Department = iota
	DepartmentProduce
	DepartmentDryGoods
	DepartmentBeverages
)

func (d Department) String() string {
	switch d {
	case DepartmentProduce:
		return "produce"
	case DepartmentDryGoods:
		return "dry_goods"
	case DepartmentBeverages:
		return "beverages"
	default:
		return "unspecified"
	}
}

// Keys are case folded.
var departmentAliases = map[string]Department{
	"obst&gemüse":       DepartmentProduce,
	"obst & gemüse":     DepartmentProduce,
	"obst und gemüse":   DepartmentProduce,
	"produce":           DepartmentProduce,
	"trocken sortiment": DepartmentDryGoods,
	"trockensortiment":  DepartmentDryGoods,
	"dry goods":         DepartmentDryGoods,
	"getränke":          DepartmentBeverages,
	"getraenke":         DepartmentBeverages,
	"beverages":         DepartmentBeverages,
}

// ParseDepartment maps the form value onto a department. Unknown names are
// DepartmentUnspecified.
func ParseDepartment(name string) Department {
	if d, ok := departmentAliases[Fold(strings.TrimSpace(name))]; ok {
		return d
	}
	return DepartmentUnspecified
}

type ProductType int

const (
	ProductNormal ProductType = iota
	ProductPromotion
	ProductBio
)

func (p ProductType) String() string {
	switch p {
	case ProductPromotion:
		return "promotion"
	case ProductBio:
		return "bio"
	default:
		return "normal"
	}
}

var productTypeAliases = map[string]ProductType{
	"normalpreis": ProductNormal,
	"normal":      ProductNormal,
	"aktion":      ProductPromotion,
	"angebot":     ProductPromotion,
	"promotion":   ProductPromotion,
	"bio":         ProductBio,
}

func ParseProductType(name string) ProductType {
	if p, ok := productTypeAliases[Fold(strings.TrimSpace(name))]; ok {
		return p
	}
	return ProductNormal
}

// Field names of the input contract, shared by the HTML form, the bot and
// the CLI flags.
const (
	FieldDepartment      = "department"
	FieldProductType     = "product_type"
	FieldManufacturer    = "manufacturer"
	FieldProductName     = "product_name"
	FieldHasVarieties    = "has_varieties"
	FieldAdditionalInfo  = "additional_info"
	FieldQuantityPerPack = "quantity_per_pack"
	FieldUnit            = "unit"
	FieldPrice           = "price"
	FieldDeposit         = "deposit"
	FieldPackagingType   = "packaging_type"
	FieldIsBio           = "is_bio"
	FieldPriceCategory   = "price_category"
	FieldWeighNumber     = "wiege_number"
	FieldIsGebinde       = "is_gebinde"
	FieldGebindeSize     = "gebinde_size"
	FieldFillVolumeMl    = "inhalt_ml"
)

// Fields lists the contract fields in form order.
var Fields = []string{
	FieldDepartment, FieldProductType, FieldManufacturer, FieldProductName,
	FieldHasVarieties, FieldAdditionalInfo, FieldQuantityPerPack, FieldUnit,
	FieldPrice, FieldDeposit, FieldPackagingType, FieldIsBio,
	FieldPriceCategory, FieldWeighNumber, FieldIsGebinde, FieldGebindeSize,
	FieldFillVolumeMl,
}

// RawInput holds the untouched field values of one request.
type RawInput struct {
	Department      string `form:"department" json:"department" mapstructure:"department"`
	ProductType     string `form:"product_type" json:"product_type" mapstructure:"product_type"`
	Manufacturer    string `form:"manufacturer" json:"manufacturer" mapstructure:"manufacturer"`
	ProductName     string `form:"product_name" json:"product_name" mapstructure:"product_name"`
	HasVarieties    string `form:"has_varieties" json:"has_varieties" mapstructure:"has_varieties"`
	AdditionalInfo  string `form:"additional_info" json:"additional_info" mapstructure:"additional_info"`
	QuantityPerPack string `form:"quantity_per_pack" json:"quantity_per_pack" mapstructure:"quantity_per_pack"`
	Unit            string `form:"unit" json:"unit" mapstructure:"unit"`
	Price           string `form:"price" json:"price" mapstructure:"price"`
	Deposit         string `form:"deposit" json:"deposit" mapstructure:"deposit"`
	PackagingType   string `form:"packaging_type" json:"packaging_type" mapstructure:"packaging_type"`
	IsBio           string `form:"is_bio" json:"is_bio" mapstructure:"is_bio"`
	PriceCategory   string `form:"price_category" json:"price_category" mapstructure:"price_category"`
	WeighNumber     string `form:"wiege_number" json:"wiege_number" mapstructure:"wiege_number"`
	IsGebinde       string `form:"is_gebinde" json:"is_gebinde" mapstructure:"is_gebinde"`
	GebindeSize     string `form:"gebinde_size" json:"gebinde_size" mapstructure:"gebinde_size"`
	FillVolumeMl    string `form:"inhalt_ml" json:"inhalt_ml" mapstructure:"inhalt_ml"`
}

// Input is the normalized, immutable record the planner works on.
type Input struct {
	Department     Department
	DepartmentName string
	ProductType    ProductType
	// IsBio is set by the bio checkbox or the Bio price type. It only
	// affects the logo, so a bio promotion keeps its promotion colors.
	IsBio bool

	Manufacturer   string
	ProductName    string
	AdditionalInfo string
	HasVarieties   bool

	QuantityPerPack string
	Unit            string

	Price   decimal.Decimal
	Deposit decimal.Decimal

	PackagingType string

	IsGebinde    bool
	GebindeSize  int
	FillVolumeMl decimal.Decimal

	PriceCategory string
	WeighNumber   string

	// Defaulted lists the fields whose value could not be parsed and fell
	// back to zero.
	Defaulted []string
}

// UnitIs reports whether the unit equals u ignoring case.
func (in Input) UnitIs(u string) bool {
	return Fold(in.Unit) == Fold(u)
}

// IsPromotion is true for labels printed with the alert color.
func (in Input) IsPromotion() bool {
	return in.ProductType == ProductPromotion
}
