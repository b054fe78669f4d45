package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/handlers"
	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/httpapi"
)

func main() {
	loadConfig()

	client, err := api.NewClient(config.BaseURL, config.AppID,
		api.WithHTTPClient(&http.Client{Timeout: time.Second * time.Duration(config.Timeout)}),
	)
	if err != nil {
		log.Fatalln("Could not create API client:", err)
	}

	store, err := newAuditStore(config)
	if err != nil {
		log.Fatalln("Could not initialize audit log:", err)
	}

	r := httpapi.NewRouter(os.Stdout, client, &httpapi.Config{APIKeyHash: config.APIKeyHash, Audit: store})

	chain := handlers.CompressHandler(handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(http.StripPrefix(config.Prefix, r)))

	log.Println("Proxying:", client.BaseURL()+"v2/"+client.AppID())
	log.Println("Listening on:", config.ListenAddr)
	log.Println(http.ListenAndServe(config.ListenAddr, chain))
}
