package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações do usuário do dashboard presentes no token Bearer.
// O token é emitido pelo provedor de identidade do dashboard; aqui ele só é verificado.
type Claims struct {
	UserEmail     string   `json:"email"`
	UserRoleID    int      `json:"role_id"`
	UserCompanies []string `json:"companies"`
	jwt.RegisteredClaims
}

// CanAccessCompany indica se o usuário pode consultar os dados da empresa
func (c *Claims) CanAccessCompany(companyID string, adminRoleID int) bool {
	if c.UserRoleID == adminRoleID {
		return true
	}
	return slices.Contains(c.UserCompanies, companyID)
}
