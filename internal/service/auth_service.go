package service

import (
	"context"
	"strings"
	"time"

	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService 统一登录认证服务（管理员、顾客、卖家）
type AuthService struct {
	cfg          *config.Config
	adminRepo    repository.AdministratorRepository
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
	hasher       *PasswordHasher
	refreshStore cache.RefreshTokenStore
	now          func() time.Time
}

// NewAuthService 创建认证服务实例
func NewAuthService(
	cfg *config.Config,
	adminRepo repository.AdministratorRepository,
	customerRepo repository.CustomerRepository,
	sellerRepo repository.SellerRepository,
	hasher *PasswordHasher,
	refreshStore cache.RefreshTokenStore,
) *AuthService {
	if refreshStore == nil {
		refreshStore = cache.NewMemoryRefreshTokenStore()
	}
	return &AuthService{
		cfg:          cfg,
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
		hasher:       hasher,
		refreshStore: refreshStore,
		now:          time.Now,
	}
}

// JWTClaims JWT 声明
type JWTClaims struct {
	Role        string `json:"role"`
	PrincipalID uint   `json:"principal_id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// Principal 已认证主体
type Principal struct {
	Role  string `json:"role"`
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenPair 登录或刷新后签发的令牌
type TokenPair struct {
	Principal        Principal `json:"principal"`
	AccessToken      string    `json:"access_token"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// Login 依次在管理员、顾客、卖家中查找邮箱并校验密码，首个匹配者胜出
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	for _, role := range constants.LoginProbeOrder {
		principal, hash, err := s.findByEmail(role, email)
		if err != nil {
			return nil, err
		}
		if principal == nil || !s.hasher.Verify(hash, password) {
			continue
		}
		if role == constants.RoleAdministrator {
			if err := s.adminRepo.UpdateLastLogin(principal.ID, s.now()); err != nil {
				logger.Warnw("auth_update_last_login_failed", "admin_id", principal.ID, "error", err)
			}
		}
		logger.Infow("auth_login_succeeded", "role", role, "principal_id", principal.ID)
		return s.issue(ctx, *principal)
	}
	return nil, ErrInvalidCredentials
}

// Refresh 使用刷新令牌换取新的令牌对，旧刷新令牌立即失效
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, ErrRefreshTokenInvalid
	}
	session, ok, err := s.refreshStore.Consume(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRefreshTokenInvalid
	}
	principal, _, err := s.findByID(session.Role, session.PrincipalID)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, ErrRefreshTokenInvalid
	}
	return s.issue(ctx, *principal)
}

// Logout 吊销刷新令牌
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil
	}
	return s.refreshStore.Revoke(ctx, refreshToken)
}

// GenerateJWT 生成访问令牌
func (s *AuthService) GenerateJWT(principal Principal) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)
	claims := JWTClaims{
		Role:        principal.Role,
		PrincipalID: principal.ID,
		Email:       principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseJWT 解析访问令牌（仅校验签名与有效期）
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.PrincipalID == 0 || !constants.Contains(constants.LoginProbeOrder, claims.Role) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) issue(ctx context.Context, principal Principal) (*TokenPair, error) {
	accessToken, expiresAt, err := s.GenerateJWT(principal)
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(s.cfg.RefreshToken.ExpireHours) * time.Hour
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	refreshToken := uuid.NewString()
	session := cache.RefreshSession{
		Role:        principal.Role,
		PrincipalID: principal.ID,
		Email:       principal.Email,
		IssuedAt:    s.now().Unix(),
	}
	if err := s.refreshStore.Save(ctx, refreshToken, session, ttl); err != nil {
		return nil, err
	}
	return &TokenPair{
		Principal:        principal,
		AccessToken:      accessToken,
		ExpiresAt:        expiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: s.now().Add(ttl),
	}, nil
}

func (s *AuthService) findByEmail(role, email string) (*Principal, string, error) {
	switch role {
	case constants.RoleAdministrator:
		admin, err := s.adminRepo.GetByEmail(email)
		if err != nil || admin == nil {
			return nil, "", err
		}
		return &Principal{Role: role, ID: admin.ID, Email: admin.Email, Name: admin.Name}, admin.PasswordHash, nil
	case constants.RoleCustomer:
		customer, err := s.customerRepo.GetByEmail(email)
		if err != nil || customer == nil {
			return nil, "", err
		}
		return &Principal{Role: role, ID: customer.ID, Email: customer.Email, Name: customer.FullName()}, customer.PasswordHash, nil
	case constants.RoleSeller:
		seller, err := s.sellerRepo.GetByEmail(email)
		if err != nil || seller == nil {
			return nil, "", err
		}
		return &Principal{Role: role, ID: seller.ID, Email: seller.Email, Name: seller.CompanyName}, seller.PasswordHash, nil
	}
	return nil, "", nil
}

func (s *AuthService) findByID(role string, id uint) (*Principal, string, error) {
	switch role {
	case constants.RoleAdministrator:
		admin, err := s.adminRepo.GetByID(id)
		if err != nil || admin == nil {
			return nil, "", err
		}
		return &Principal{Role: role, ID: admin.ID, Email: admin.Email, Name: admin.Name}, admin.PasswordHash, nil
	case constants.RoleCustomer:
		customer, err := s.customerRepo.GetByID(id)
		if err != nil || customer == nil {
			return nil, "", err
		}
		return &Principal{Role: role, ID: customer.ID, Email: customer.Email, Name: customer.FullName()}, customer.PasswordHash, nil
	case constants.RoleSeller:
		seller, err := s.sellerRepo.GetByID(id)
		if err != nil || seller == nil {
			return nil, "", err
		}
		return &Principal{Role: role, ID: seller.ID, Email: seller.Email, Name: seller.CompanyName}, seller.PasswordHash, nil
	}
	return nil, "", nil
}
