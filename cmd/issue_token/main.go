// issue_token imprime un JWT para la API del asistente.
//
// Uso: go run ./cmd/issue_token <user_id> <admin|operator|viewer>
// Usa JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la configuración.
package main

import (
	"fmt"
	"os"

	"github.com/elliotchance/pie/v2"

	"github.com/jhoicas/retail-wizard/pkg/config"
	"github.com/jhoicas/retail-wizard/pkg/jwt"
)

var roles = []string{jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleViewer}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: issue_token <user_id> <admin|operator|viewer>")
		os.Exit(2)
	}
	userID, role := os.Args[1], os.Args[2]
	if !pie.Contains(roles, role) {
		fmt.Fprintf(os.Stderr, "rol desconocido %q\n", role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, userID, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
