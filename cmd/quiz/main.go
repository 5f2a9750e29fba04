package main

import (
	"OpenSAT-Quiz-Backend/internal/client"
	"OpenSAT-Quiz-Backend/internal/config"
	"OpenSAT-Quiz-Backend/internal/console"
	"OpenSAT-Quiz-Backend/internal/repository"
	"OpenSAT-Quiz-Backend/internal/service"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("quiz", pflag.ExitOnError)
	configFile := flags.String("config", "", "path to a config file (default: ./config/config.yaml or ./config.yaml)")
	verbose := flags.BoolP("verbose", "v", false, "print fetch and selection logs to stderr")
	flags.String("section", "", "question bank section, e.g. math or english (inferred from --domain when empty)")
	flags.String("domain", "Algebra", "domain within the section, e.g. Algebra")
	_ = flags.Parse(os.Args[1:])

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	v := config.New(*configFile)
	_ = v.BindPFlag("quiz.section", flags.Lookup("section"))
	_ = v.BindPFlag("quiz.domain", flags.Lookup("domain"))

	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	domainRepo, err := repository.NewDomainRepository(cfg.Catalog.Domains)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	openSATClient := client.NewOpenSATClient(cfg.OpenSAT.BaseURL, cfg.OpenSAT.TimeoutSeconds)
	bankService := service.NewQuestionBankService(openSATClient)
	quizService := service.NewQuizService(bankService, domainRepo, nil)

	runner := console.NewRunner(quizService, os.Stdin, os.Stdout)
	if err := runner.Run(context.Background(), cfg.Quiz.Section, cfg.Quiz.Domain); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
