package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/odyssey-erp/inventory-api/internal/app"
)

type routeInfo struct {
	Method string
	Path   string
}

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			container := &app.Container{
				Config:   cfg,
				Logger:   slog.New(slog.DiscardHandler),
				Services: app.NewServices(nil, nil, cfg, nil, nil),
			}
			infos, err := collectRoutes(container.Handler())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH")
			for _, ri := range infos {
				fmt.Fprintf(w, "%s\t%s\n", ri.Method, ri.Path)
			}
			return w.Flush()
		},
	}
}

func collectRoutes(h http.Handler) ([]routeInfo, error) {
	routes, ok := h.(chi.Routes)
	if !ok {
		return nil, errors.New("routes: handler is not a chi router")
	}
	var infos []routeInfo
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		infos = append(infos, routeInfo{Method: method, Path: strings.TrimSuffix(route, "/*")})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Path != infos[j].Path {
			return infos[i].Path < infos[j].Path
		}
		return infos[i].Method < infos[j].Method
	})
	return infos, nil
}
