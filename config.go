package main

import (
	"log"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

//Config represents options given in the environment
type Config struct {
	BaseURL string //BraDypUS API URL, e.g. https://bdus.cloud/db/api/; required
	AppID   string //application ID; required
	Timeout int    //upstream request timeout in seconds; default: 30

	APIKeyHash string //bcrypt hash of key required in X-API-Key header; optional

	SQLDriver string //audit log database driver; optional
	SQLDSN    string //required if SQLDriver is set

	AuditSize int //number of requests kept in the in-memory audit log when SQLDriver isn't set; 0 disables

	ListenAddr string //addr format used for net.Dial; required
	Prefix     string //url prefix to mount api to without trailing slash
}

var config = &Config{}

func checkEmpty(val, name string) {
	if val == "" {
		log.Fatalf("BDUS_%s must be configured\n", name)
	}
}

//loadConfig reads config from the environment, exiting if it's invalid
func loadConfig() {
	err := envconfig.Process("BDUS", config)
	if err != nil {
		log.Fatalln("Error reading configuration from environment:", err)
	}

	if config.Timeout == 0 {
		config.Timeout = 30
	}

	checkEmpty(config.BaseURL, "BASEURL")
	checkEmpty(config.AppID, "APPID")

	if config.AuditSize < 0 {
		log.Fatalln("BDUS_AUDITSIZE must not be negative")
	}

	if config.SQLDriver != "" {
		checkEmpty(config.SQLDSN, "SQLDSN")
		if config.SQLDriver == "mysql" && !strings.Contains(config.SQLDSN, "parseTime=true") {
			log.Fatalln("mysql DSN must contain \"parseTime=true\"")
		}
	}

	checkEmpty(config.ListenAddr, "LISTENADDR")
}
