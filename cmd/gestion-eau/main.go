package main

import "github.com/lounnaci/gestion-eau/internal/cli"

// @title           Gestion Eau API
// @version         1.0
// @description     API d'administration pour la gestion des branchements et devis d'eau.
// @BasePath        /
func main() {
	cli.Execute()
}
