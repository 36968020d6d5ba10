package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourorg/safiri/internal/cache"
	appdb "github.com/yourorg/safiri/internal/db"
	"github.com/yourorg/safiri/internal/enrich"
	"github.com/yourorg/safiri/internal/handlers"
	"github.com/yourorg/safiri/internal/locations"
	"github.com/yourorg/safiri/internal/models"
	"github.com/yourorg/safiri/internal/routing"
)

func main() {
	_ = godotenv.Load()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== Safiri CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) List locations")
		fmt.Println("3) Search routes")
		fmt.Println("4) Ensure database schema")
		fmt.Println("5) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doListLocations()
		case "3":
			doSearch(reader)
		case "4":
			doEnsureSchema()
		case "5":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	url := strings.TrimRight(base, "/") + "/api/health"

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()

	var health handlers.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		fmt.Println("Health status:", resp.Status)
		return
	}
	fmt.Println("Health status:", resp.Status, "-", handlers.HealthSummary(health))
}

func doListLocations() {
	for _, loc := range locations.Default().All() {
		if loc.HasCoordinates() {
			fmt.Printf("  %-22s %-7s (%.4f, %.4f)\n", loc.Name, loc.Kind, loc.Coordinates.Lat, loc.Coordinates.Lng)
		} else {
			fmt.Printf("  %-22s %-7s\n", loc.Name, loc.Kind)
		}
	}
}

func doSearch(reader *bufio.Reader) {
	origin := prompt(reader, "Origin: ")
	destination := prompt(reader, "Destination: ")
	withEnrichment := strings.EqualFold(prompt(reader, "Enrich with external data? (y/N): "), "y")

	engine := routing.NewDefaultEngine()
	routes := engine.Synthesize(origin, destination)
	if len(routes) == 0 {
		fmt.Println("No routes found. Use option 2 to see valid location names.")
		return
	}

	if withEnrichment {
		cache.InitCaches()
		defer cache.StopCaches()

		enricher := enrich.NewEnricher(enrich.NewSourceFromEnv(), enrich.TimeoutFromEnv(), cache.ScrapeCache)
		enriched, err := enricher.TryEnrich(context.Background(), origin, destination, routes)
		if err != nil {
			fmt.Println("Enrichment unavailable, showing calculated routes:", err)
		} else {
			routes = enriched
		}
	}

	printRoutes(routes)
}

func printRoutes(routes []models.Route) {
	for _, r := range routes {
		marker := " "
		if r.Recommended {
			marker = "*"
		}
		fmt.Printf("%s %-5s %-22s %s -> %s  %-8s %-12s %s\n",
			marker, r.Type, r.Operator, r.Departure, r.Arrival, r.Duration, r.Price, r.Frequency)
	}
}

func doEnsureSchema() {
	db, err := appdb.Connect()
	if err != nil {
		log.Println("DB connect error:", err)
		return
	}
	defer db.Close()

	if err := appdb.EnsureSchema(db); err != nil {
		log.Println("Ensure schema error:", err)
		return
	}
	fmt.Println("Schema OK: enrichment_runs")
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
