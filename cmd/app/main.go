package main

import (
	"OpenSAT-Quiz-Backend/internal/api"
	"OpenSAT-Quiz-Backend/internal/client"
	"OpenSAT-Quiz-Backend/internal/config"
	"OpenSAT-Quiz-Backend/internal/repository"
	"OpenSAT-Quiz-Backend/internal/router"
	"OpenSAT-Quiz-Backend/internal/service"
	"fmt"
	"log"
)

func main() {
	cfg, err := config.Load(config.New(""))
	if err != nil {
		log.Fatalf("加载配置失败: %s", err)
	}

	domainRepo, err := repository.NewDomainRepository(cfg.Catalog.Domains)
	if err != nil {
		log.Fatalf("初始化领域目录失败: %s", err)
	}

	openSATClient := client.NewOpenSATClient(cfg.OpenSAT.BaseURL, cfg.OpenSAT.TimeoutSeconds)
	bankService := service.NewQuestionBankService(openSATClient)
	quizService := service.NewQuizService(bankService, domainRepo, nil)

	quizHandler := api.NewQuizHandler(bankService, quizService, domainRepo)

	r := router.SetupRouter(quizHandler, cfg.CORS.AllowedOrigins)

	fmt.Printf("服务启动于 http://localhost%s\n", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务启动失败: %s", err)
	}
}
