package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/config"
	"hanziclash/internal/database"
	"hanziclash/internal/repository"
	"hanziclash/internal/service"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	playerRepo := repository.NewPlayerRepository(db)
	guardianRepo := repository.NewGuardianRepository(db)
	backupService := service.NewBackupService(playerRepo, guardianRepo)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal().Err(err).Msg("failed to create output directory")
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output file")
	}
	defer file.Close()

	if err := backupService.Export(file); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	if info, err := os.Stat(outputPath); err == nil {
		log.Info().Str("path", outputPath).Int64("bytes", info.Size()).Msg("export complete")
	}
}

func handleImport(backupService *service.BackupService, inputPath string) {
	file, err := os.Open(inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", inputPath).Msg("failed to open input file")
	}
	defer file.Close()

	if err := backupService.Import(file); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().Str("path", inputPath).Msg("import complete")
}

func printUsage() {
	fmt.Println("Hanzi Clash Database Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export accounts and progression to JSON")
	fmt.Println("  backup import [options]    Import accounts and progression from JSON")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println()
	fmt.Println("Existing players are skipped on import, never overwritten.")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH    SQLite database path (default: ./hanziclash.db)")
	fmt.Println("  DB_URL     PostgreSQL or MySQL connection URL")
}
