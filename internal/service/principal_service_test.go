package service

import (
	"errors"
	"testing"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
)

func TestCustomerEmailUniqueAndPasswordHashed(t *testing.T) {
	s := newTestServices(t)
	customer, err := s.customers.Create(CustomerInput{FirstName: "Bo", Email: " Bo@Example.com ", Password: testPassword})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if customer.Email != "bo@example.com" {
		t.Fatalf("email should be normalized, got %s", customer.Email)
	}
	if customer.PasswordHash == testPassword || !s.hasher.Verify(customer.PasswordHash, testPassword) {
		t.Fatalf("password should be stored as bcrypt hash")
	}
	if _, err := s.customers.Create(CustomerInput{Email: "bo@example.com", Password: testPassword}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate email should fail, got %v", err)
	}
	if _, err := s.customers.Create(CustomerInput{Email: "weak@example.com", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak password should fail, got %v", err)
	}
	if _, err := s.customers.Create(CustomerInput{Email: "not-an-email", Password: testPassword}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("invalid email should fail, got %v", err)
	}
}

func TestCustomerPartialUpdate(t *testing.T) {
	s := newTestServices(t)
	customer, err := s.customers.Create(CustomerInput{FirstName: "Bo", LastName: "Li", Email: "bo@example.com", Password: testPassword, City: "Oslo"})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	updated, err := s.customers.Update(customer.ID, CustomerInput{Phone: "555"})
	if err != nil {
		t.Fatalf("update customer failed: %v", err)
	}
	if updated.Phone != "555" || updated.FirstName != "Bo" || updated.LastName != "Li" || updated.City != "Oslo" || updated.Email != "bo@example.com" {
		t.Fatalf("partial update touched other fields: %+v", updated)
	}
	if updated.PasswordHash != customer.PasswordHash {
		t.Fatalf("password hash should stay when password is empty")
	}
}

func TestCustomerDeleteCascades(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := s.payments.Create(0, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodBankTransfer}); err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if _, err := s.carts.Add(CartInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add cart failed: %v", err)
	}
	if _, err := s.reviews.Create(ReviewInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Rating: 5}); err != nil {
		t.Fatalf("create review failed: %v", err)
	}

	if err := s.customers.Delete(fx.customer.ID); err != nil {
		t.Fatalf("delete customer failed: %v", err)
	}
	for _, model := range []interface{}{&models.Cart{}, &models.Review{}, &models.Order{}, &models.Payment{}} {
		var count int64
		s.db.Model(model).Where("customer_id = ?", fx.customer.ID).Count(&count)
		if count != 0 {
			t.Fatalf("%T rows should be removed, got %d", model, count)
		}
	}
	if err := s.customers.Delete(fx.customer.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting missing customer should be not found, got %v", err)
	}
}

func TestSellerDeleteRemovesProducts(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	if _, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := s.sellers.Delete(fx.seller.ID); err != nil {
		t.Fatalf("delete seller failed: %v", err)
	}
	var products, orders int64
	s.db.Model(&models.Product{}).Where("seller_id = ?", fx.seller.ID).Count(&products)
	s.db.Model(&models.Order{}).Where("product_id = ?", fx.product.ID).Count(&orders)
	if products != 0 || orders != 0 {
		t.Fatalf("seller products and their orders should be removed: products=%d orders=%d", products, orders)
	}
	if _, err := s.customers.Get(fx.customer.ID); err != nil {
		t.Fatalf("customer should survive seller delete: %v", err)
	}
}

func TestAdministratorKeepsLastAccount(t *testing.T) {
	s := newTestServices(t)
	first, err := s.admins.Create(AdministratorInput{Email: "root@example.com", Password: testPassword})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if first.Name != "root@example.com" {
		t.Fatalf("name should default to email, got %s", first.Name)
	}
	if err := s.admins.Delete(first.ID); !errors.Is(err, ErrLastAdministrator) {
		t.Fatalf("last admin delete should be refused, got %v", err)
	}
	second, err := s.admins.Create(AdministratorInput{Name: "Ops", Email: "ops@example.com", Password: testPassword})
	if err != nil {
		t.Fatalf("create second admin failed: %v", err)
	}
	if err := s.admins.Delete(second.ID); err != nil {
		t.Fatalf("delete second admin failed: %v", err)
	}
}

func TestRegistrationRejectsEmailUsedByAnyRole(t *testing.T) {
	s := newTestServices(t)
	if _, err := s.admins.Create(AdministratorInput{Email: "taken@example.com", Password: testPassword}); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if _, err := s.register.RegisterCustomer(CustomerInput{Email: "taken@example.com", Password: testPassword}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("customer registration should see admin email, got %v", err)
	}
	if _, err := s.register.RegisterSeller(SellerInput{CompanyName: "Shop", Email: "TAKEN@example.com", Password: testPassword}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("seller registration should see admin email, got %v", err)
	}
	seller, err := s.register.RegisterSeller(SellerInput{CompanyName: "Shop", Email: "shop@example.com", Password: testPassword})
	if err != nil || seller.ID == 0 {
		t.Fatalf("seller registration failed: %v", err)
	}
}
