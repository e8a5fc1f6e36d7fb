package main

import (
	auth "Hoist/internal/auth"
	impact "Hoist/internal/calc/impact"
	overload "Hoist/internal/calc/overload"
	autodesign "Hoist/internal/calc/premium/autodesign"
	batch "Hoist/internal/calc/premium/batch"
	importer "Hoist/internal/calc/premium/importer"
	recommend "Hoist/internal/calc/premium/recommend"
	report "Hoist/internal/calc/report"
	safety "Hoist/internal/calc/safety"
	scenario "Hoist/internal/calc/scenario"
	simparams "Hoist/internal/calc/simparams"
	wind "Hoist/internal/calc/wind"
	history "Hoist/internal/history"
	observability "Hoist/internal/observability"
	repo "Hoist/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	liftRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, using environment as is")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: liftRepo}
	metrics := observability.NewMetrics()

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	impactH := &impact.Handler{}
	windH := &wind.Handler{}
	overloadH := &overload.Handler{}
	safetyH := &safety.Handler{Repo: liftRepo, Metrics: metrics}
	scenarioH := &scenario.Handler{}
	simparamsH := &simparams.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{}
	historyH := &history.Handler{Repo: liftRepo}

	secureApi.HandleFunc("/tools/impact/calc", impactH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/wind/calc", windH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/overload/calc", overloadH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/safety/calc", safetyH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/scenario", scenarioH.List).Methods("GET")
	secureApi.HandleFunc("/tools/scenario/{name}", scenarioH.Get).Methods("GET")
	secureApi.HandleFunc("/tools/simparams/build", simparamsH.Build).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/batch/safety", batchH.Safety).Methods("POST")
	secureApi.HandleFunc("/tools/import/safety", importerH.Safety).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/crane", recommendH.Crane).Methods("POST")
	secureApi.HandleFunc("/tools/autodesign/damper", autodesignH.Damper).Methods("POST")

	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")

	mux.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
