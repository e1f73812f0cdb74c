package generator

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/environment"
)

// Generator builds the trains of one timetable configuration.
type Generator struct {
	env    *environment.Environment
	config *config.FahrplanConfig

	zuege     map[string]*config.ZugConfig
	routes    map[string]*ResolvedRoute
	resolving map[string]bool
}

func New(cfg *config.ZusiEnvironment) (*Generator, error) {
	env, err := environment.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		env:       env,
		config:    &cfg.Fahrplan,
		zuege:     map[string]*config.ZugConfig{},
		routes:    map[string]*ResolvedRoute{},
		resolving: map[string]bool{},
	}

	for i := range cfg.Fahrplan.Zuege {
		zugConfig := &cfg.Fahrplan.Zuege[i]
		if _, exists := g.zuege[zugConfig.Nummer]; exists {
			log.Warn().Str("nummer", zugConfig.Nummer).Msg("Train number configured more than once, references use the first")
			continue
		}
		g.zuege[zugConfig.Nummer] = zugConfig
	}

	return g, nil
}

// route returns the merged route of the train config with the given number.
// Routes are resolved once; callers that modify the result must clone it.
func (g *Generator) route(nummer string) (*ResolvedRoute, error) {
	if route, ok := g.routes[nummer]; ok {
		return route, nil
	}

	zugConfig, ok := g.zuege[nummer]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTrainConfig, nummer)
	}

	if g.resolving[nummer] {
		return nil, fmt.Errorf("%w: %s", ErrRouteReferenceCycle, nummer)
	}
	g.resolving[nummer] = true
	defer delete(g.resolving, nummer)

	route, err := g.resolveRoute(zugConfig)
	if err != nil {
		return nil, err
	}

	g.routes[nummer] = &route.ResolvedRoute
	return &route.ResolvedRoute, nil
}

// referencedRoute returns a private copy of another train's route.
func (g *Generator) referencedRoute(nummer string) (*ResolvedRoute, error) {
	route, err := g.route(nummer)
	if err != nil {
		return nil, err
	}
	return clone(route)
}

func (g *Generator) resolveRoute(zugConfig *config.ZugConfig) (*ResolvedRoutePart, error) {
	if len(zugConfig.Route) == 0 {
		return nil, ErrNoRouteParts
	}

	var route *ResolvedRoutePart
	for i := range zugConfig.Route {
		part, err := g.resolveRoutePart(&zugConfig.Route[i])
		if err != nil {
			return nil, fmt.Errorf("route part %d: %w", i+1, err)
		}

		if route == nil {
			route = part
			continue
		}
		if err := mergeRouteParts(route, part); err != nil {
			return nil, fmt.Errorf("route part %d: %w", i+1, err)
		}
	}

	return route, nil
}
