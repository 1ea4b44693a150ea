package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagflow/internal/api"
	"github.com/matzehuels/tagflow/pkg/cache"
	"github.com/matzehuels/tagflow/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		prefix    string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render API over HTTP",
		Long: `Serve the layout and render API over HTTP.

Layouts and artifacts are cached in Redis when --redis (or ` + envRedisAddr + `)
is set, and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("redis") {
				redisAddr = os.Getenv(envRedisAddr)
			}
			return c.runServe(cmd.Context(), addr, redisAddr, prefix, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the shared cache (default $"+envRedisAddr+")")
	cmd.Flags().StringVar(&prefix, "cache-prefix", appName+":", "key prefix for the shared cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, prefix string, noCache bool) error {
	runner, err := c.newServerRunner(ctx, redisAddr, prefix, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	printSuccess("Serving %s API", appName)
	printKeyValue("Listen", StyleLink.Render(baseURL(addr)))
	switch {
	case noCache:
		printWarning("Caching disabled")
	case redisAddr != "":
		printKeyValue("Cache", "redis "+StyleHighlight.Render(redisAddr))
	}
	printNewline()
	printNextStep("Try", "curl -s -X POST "+baseURL(addr)+"/v1/render?format=txt -d '{\"labels\":[\"go\",\"rust\"],\"options\":{\"unit\":\"cell\"}}'")

	srv := api.New(runner, api.WithLogger(c.Logger))
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

// newServerRunner builds the runner behind the API: Redis with scoped keys
// when an address is given, the local file cache otherwise.
func (c *CLI) newServerRunner(ctx context.Context, redisAddr, prefix string, noCache bool) (*pipeline.Runner, error) {
	if noCache || redisAddr == "" {
		return c.newRunner(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, redisAddr)
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", redisAddr, err)
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), prefix)
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}

// baseURL turns a listen address into a URL for display.
func baseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
