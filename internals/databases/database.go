package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tciv_backend/internals/configs"
)

var (
	// DB → esquema propio de la app (t-civ): captures, capture_defects, defects
	DB *gorm.DB
	// ExtDB → MySQL externo de planta: empleados.del_accesos y b10_bartender (vulc/extr).
	// Solo lectura vía SQL crudo; esas tablas no son nuestras.
	ExtDB *gorm.DB
)

func ConnectDB() {
	log.Println("🔌 Conectando a MySQL (t-civ)...")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&timeout=5s",
		os.Getenv("MYSQL_USER2"),
		os.Getenv("MYSQL_PASSWORD2"),
		os.Getenv("MYSQL_HOST2"),
		getenv("MYSQL_PORT2", "3306"),
		getenv("MYSQL_DATABASE2", "t-civ"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a MySQL (t-civ): %v", err)
	}
	DB = db
	log.Println("✅ MySQL (t-civ) conectado.")
}

func ConnectExtDB() {
	log.Println("🔌 Conectando a MySQL externo (empleados / b10_bartender)...")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&timeout=5s",
		os.Getenv("MYSQL_USER"),
		os.Getenv("MYSQL_PASSWORD"),
		os.Getenv("MYSQL_HOST"),
		getenv("MYSQL_PORT", "3306"),
		getenv("MYSQL_DATABASE", "empleados"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a MySQL externo: %v", err)
	}
	ExtDB = db
	log.Println("✅ MySQL externo conectado.")
}

func TunePool() {
	for _, g := range []*gorm.DB{DB, ExtDB} {
		if g == nil {
			continue
		}
		sqlDB, err := g.DB()
		if err != nil {
			log.Printf("pool tune err: %v", err)
			continue
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(60 * time.Second)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)
	}
}

func WarmUpQueries() {
	// ping ligero para que el pool quede listo antes del primer request
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(DB); err != nil {
			log.Printf("warm-up ping (t-civ) err: %v", err)
		}
		if err := ping(ExtDB); err != nil {
			log.Printf("warm-up ping (externo) err: %v", err)
		}
	}()
}

func ping(g *gorm.DB) error {
	if g == nil {
		return nil
	}
	sqlDB, err := g.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
