package main

import (
	"github.com/aishwaryacr5/Taste-perception/config"
	"github.com/aishwaryacr5/Taste-perception/routes"
	"github.com/aishwaryacr5/Taste-perception/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
