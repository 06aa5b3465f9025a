package cmd

import (
	"fmt"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rybkr/wordsearch/internal/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	port      string
	localOnly bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve puzzle generation over HTTP",
		Long: `Serve puzzle generation as an HTTP function.

POST /generate with a JSON body such as
  {"rows": 10, "cols": 10, "words": ["cat", "dog"], "tries": 5}`,
		RunE: runServe,
	}

	defaultPort := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		defaultPort = envPort
	}
	serveCmd.Flags().StringVar(&port, "port", defaultPort, "Port to listen on")
	serveCmd.Flags().BoolVar(&localOnly, "local-only", os.Getenv("LOCAL_ONLY") == "true", "Listen on 127.0.0.1 only")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	funcframework.RegisterHTTPFunction("/generate", api.New(logrus.StandardLogger()).ServeHTTP)

	hostname := ""
	if localOnly {
		hostname = "127.0.0.1"
	}
	logrus.WithFields(logrus.Fields{"host": hostname, "port": port}).Info("listening")
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		return fmt.Errorf("funcframework.StartHostPort: %w", err)
	}
	return nil
}
