package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-config-loader/internal/app"
	"github.com/MKhiriev/go-config-loader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(os.Stderr)

	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// printBuildInfo writes to w so that stdout only carries the configuration.
func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
