package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	LastLogin time.Time `json:"last_login"`
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// LocalProvider keeps users in memory with bcrypt-hashed passwords and issues
// HMAC-signed JWTs.
type LocalProvider struct {
	users     map[string]*User
	passwords map[string]string
	jwtSecret []byte
}

func NewLocalProvider(jwtSecret string) *LocalProvider {
	provider := &LocalProvider{
		users:     make(map[string]*User),
		passwords: make(map[string]string),
		jwtSecret: []byte(jwtSecret),
	}
	provider.initDefaultUsers()
	return provider
}

func (p *LocalProvider) initDefaultUsers() {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	p.users["admin"] = &User{
		ID:       uuid.New(),
		Username: "admin",
		Role:     "admin",
		Active:   true,
	}
	p.passwords["admin"] = string(hashedPassword)
}

func (p *LocalProvider) Authenticate(creds Credentials) (*User, error) {
	user, exists := p.users[creds.Username]
	if !exists || !user.Active {
		return nil, fmt.Errorf("invalid credentials")
	}

	hashedPassword := p.passwords[creds.Username]
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(creds.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	user.LastLogin = time.Now()
	return user, nil
}

func (p *LocalProvider) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return p.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (p *LocalProvider) RefreshToken(refreshToken string) (*TokenPair, error) {
	claims, err := p.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, exists := p.users[claims.Username]
	if !exists || !user.Active {
		return nil, fmt.Errorf("user not found or inactive")
	}

	return p.GenerateTokens(user)
}

func (p *LocalProvider) GenerateTokens(user *User) (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(15 * time.Minute)
	refreshExpiry := now.Add(7 * 24 * time.Hour)

	accessClaims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(p.jwtSecret)
	if err != nil {
		return nil, err
	}

	refreshClaims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(p.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpiry,
	}, nil
}
