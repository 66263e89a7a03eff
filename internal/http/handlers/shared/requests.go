package shared

import (
	"time"

	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/service"
)

// 请求体中未出现的字段保持零值，由 service 层视为“未提供”

// CustomerRequest 顾客创建/更新请求
type CustomerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ToInput 转换为 service 输入
func (r CustomerRequest) ToInput() service.CustomerInput {
	return service.CustomerInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Password:   r.Password,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// SellerRequest 卖家创建/更新请求
type SellerRequest struct {
	CompanyName       string `json:"company_name"`
	ContactName       string `json:"contact_name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	BankAccountNumber string `json:"bank_account_number"`
	BankName          string `json:"bank_name"`
	TaxID             string `json:"tax_id"`
}

// ToInput 转换为 service 输入
func (r SellerRequest) ToInput() service.SellerInput {
	return service.SellerInput{
		CompanyName:       r.CompanyName,
		ContactName:       r.ContactName,
		Email:             r.Email,
		Password:          r.Password,
		Phone:             r.Phone,
		Address:           r.Address,
		BankAccountNumber: r.BankAccountNumber,
		BankName:          r.BankName,
		TaxID:             r.TaxID,
	}
}

// AdministratorRequest 管理员创建/更新请求
type AdministratorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToInput 转换为 service 输入
func (r AdministratorRequest) ToInput() service.AdministratorInput {
	return service.AdministratorInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

// CategoryRequest 分类请求
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToInput 转换为 service 输入
func (r CategoryRequest) ToInput() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Description: r.Description}
}

// ProductRequest 商品请求
type ProductRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	Stock       int          `json:"stock"`
	ImageURL    string       `json:"image_url"`
	CategoryID  uint         `json:"category_id"`
	SellerID    uint         `json:"seller_id"`
}

// ToInput 转换为 service 输入
func (r ProductRequest) ToInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		CategoryID:  r.CategoryID,
		SellerID:    r.SellerID,
	}
}

// InventoryRequest 库存记录请求
type InventoryRequest struct {
	ProductID       uint       `json:"product_id"`
	CurrentStock    int        `json:"current_stock"`
	MinimumStock    int        `json:"minimum_stock"`
	LastRestockDate *time.Time `json:"last_restock_date"`
	NextRestockDate *time.Time `json:"next_restock_date"`
}

// ToInput 转换为 service 输入
func (r InventoryRequest) ToInput() service.InventoryInput {
	return service.InventoryInput{
		ProductID:       r.ProductID,
		CurrentStock:    r.CurrentStock,
		MinimumStock:    r.MinimumStock,
		LastRestockDate: r.LastRestockDate,
		NextRestockDate: r.NextRestockDate,
	}
}

// CartRequest 购物车请求
type CartRequest struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
	Quantity   int  `json:"quantity"`
}

// ToInput 转换为 service 输入
func (r CartRequest) ToInput() service.CartInput {
	return service.CartInput{CustomerID: r.CustomerID, ProductID: r.ProductID, Quantity: r.Quantity}
}

// OrderRequest 订单请求，unit_price 仅为兼容字段，始终以商品当前单价为准
type OrderRequest struct {
	CustomerID      uint         `json:"customer_id"`
	ProductID       uint         `json:"product_id"`
	Quantity        int          `json:"quantity"`
	UnitPrice       models.Money `json:"unit_price"`
	TotalAmount     models.Money `json:"total_amount"`
	ShippingAddress string       `json:"shipping_address"`
	Status          string       `json:"status" binding:"omitempty,order_status"`
	OrderDate       *time.Time   `json:"order_date"`
}

// ToInput 转换为 service 输入
func (r OrderRequest) ToInput() service.OrderInput {
	return service.OrderInput{
		CustomerID:      r.CustomerID,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		TotalAmount:     r.TotalAmount,
		ShippingAddress: r.ShippingAddress,
		Status:          r.Status,
		OrderDate:       r.OrderDate,
	}
}

// PaymentRequest 支付记录请求
type PaymentRequest struct {
	OrderID       uint       `json:"order_id"`
	CustomerID    uint       `json:"customer_id"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,payment_method"`
	PaymentStatus string     `json:"payment_status" binding:"omitempty,payment_status"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// ToInput 转换为 service 输入
func (r PaymentRequest) ToInput() service.PaymentInput {
	return service.PaymentInput{
		OrderID:       r.OrderID,
		CustomerID:    r.CustomerID,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		PaymentDate:   r.PaymentDate,
	}
}

// ReviewRequest 评价请求
type ReviewRequest struct {
	CustomerID uint       `json:"customer_id"`
	ProductID  uint       `json:"product_id"`
	Rating     int        `json:"rating"`
	ReviewText string     `json:"review_text"`
	ReviewDate *time.Time `json:"review_date"`
}

// ToInput 转换为 service 输入
func (r ReviewRequest) ToInput() service.ReviewInput {
	return service.ReviewInput{
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		ReviewDate: r.ReviewDate,
	}
}
