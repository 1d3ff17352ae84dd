// Command routectl runs one routing computation from a JSON request file and
// prints the JSON result. It uses the same configuration as the server.
//
//	routectl -kind plan -in testdata/plan.json
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/app"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/domain"
	"time"
)

func main() {
	kind := flag.String("kind", "route", "request kind: route, plan, alternatives or fuel")
	in := flag.String("in", "-", "request file, - for stdin")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	body, err := readInput(*in)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	out, err := run(ctx, svc, *kind, body)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request %q: %w", path, err)
	}
	return b, nil
}

// run decodes body as the request type for kind and returns the response DTO.
func run(ctx context.Context, svc *app.Services, kind string, body []byte) (any, error) {
	switch kind {
	case "route":
		var req dto.RouteRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		r, err := req.ToDomain()
		if err != nil {
			return nil, err
		}
		res, err := svc.Optimizer.CalculateRoute(ctx, r)
		if err != nil {
			return nil, err
		}
		return dto.FromRoute(res), nil

	case "alternatives":
		var req dto.AlternativesRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		r, err := req.ToDomain()
		if err != nil {
			return nil, err
		}
		routes, err := svc.Optimizer.GetAlternativeRoutes(ctx, r, req.Max())
		if err != nil {
			return nil, err
		}
		return dto.AlternativesResponse{Routes: dto.FromRoutes(routes)}, nil

	case "plan":
		var req dto.PlanRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		r, err := req.ToDomain()
		if err != nil {
			return nil, err
		}
		plan, err := svc.Planner.PlanRoute(ctx, r)
		if err != nil {
			return nil, err
		}
		return dto.FromPlan(plan), nil

	case "fuel":
		var req dto.FuelCostRequest
		if err := decodeStrict(body, &req); err != nil {
			return nil, err
		}
		distance, err := req.Distance()
		if err != nil {
			return nil, err
		}
		est, err := svc.Optimizer.CalculateFuelCost(distance, domain.ParseVehicleClass(req.VehicleClass), req.FuelPricePerGallon)
		if err != nil {
			return nil, err
		}
		return dto.FromFuelCost(est), nil

	default:
		return nil, fmt.Errorf("unknown -kind %q", kind)
	}
}

func decodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("decode request: body must contain only one JSON object")
	}
	return nil
}
