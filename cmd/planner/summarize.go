package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
	"github.com/osse101/FactoryPlanner_Go/internal/productionline"
)

// LineReport is the summary of one line read from a file
type LineReport struct {
	Name    string                  `json:"name"`
	Slug    string                  `json:"slug"`
	Summary *production.LineSummary `json:"summary"`
}

func summarizeCmd() *cli.Command {
	return &cli.Command{
		Name:  "summarize",
		Usage: "Summarize production lines from an exported JSON or YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagFile,
				Aliases:  []string{"f"},
				Usage:    "Path to a line export (.json, .yaml or .yml)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  flagLine,
				Usage: "Only summarize the line with this slug",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseFormat(cmd.String(flagFormat))
			if err != nil {
				return err
			}

			path := cmd.String(flagFile)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf(errFmtReadLines, path, err)
			}
			lines, err := decodeLines(data, formatFromPath(path))
			if err != nil {
				return fmt.Errorf(errFmtReadLines, path, err)
			}

			if slug := cmd.String(flagLine); slug != "" {
				lines, err = selectLine(lines, slug, path)
				if err != nil {
					return err
				}
			}

			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			// only ad-hoc summaries are used, so no repository is needed
			svc := productionline.NewService(nil, cat, production.NewEngine(cat), productionline.CacheConfig{})

			reports := make([]LineReport, 0, len(lines))
			for _, line := range lines {
				summary, err := svc.SummarizeInstances(ctx, instanceSpecs(line))
				if err != nil {
					return fmt.Errorf("line %q: %w", line.Slug, err)
				}
				reports = append(reports, LineReport{Name: line.Name, Slug: line.Slug, Summary: summary})
			}

			out := cmd.Root().Writer
			if format != FormatTable {
				return writeStructured(out, format, reports)
			}
			return writeReports(out, reports)
		},
	}
}

func selectLine(lines []domain.ProductionLine, slug, path string) ([]domain.ProductionLine, error) {
	for _, line := range lines {
		if line.Slug == slug {
			return []domain.ProductionLine{line}, nil
		}
	}
	return nil, fmt.Errorf(errFmtLineNotFound, domain.ErrLineNotFound, slug, path)
}

func instanceSpecs(line domain.ProductionLine) []productionline.InstanceSpec {
	specs := make([]productionline.InstanceSpec, len(line.Recipes))
	for i, ri := range line.Recipes {
		clock, machines := ri.ClockSpeed, ri.MachineCount
		specs[i] = productionline.InstanceSpec{
			RecipeID:     ri.ID,
			ClockSpeed:   &clock,
			MachineCount: &machines,
		}
	}
	return specs
}

func writeReports(w io.Writer, reports []LineReport) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n\n", r.Name, r.Slug)

		t := newTable(w, "ITEM", "NAME", "PRODUCTION", "CONSUMPTION", "NET")
		for _, is := range r.Summary.Items {
			t.row(is.Item.ID, is.Item.Name,
				formatRate(is.GrossProduction), formatRate(is.Consumption), formatRate(is.NetProduction()))
		}
		if err := t.flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)

		t = newTable(w, "#", "RECIPE", "POWER_PRODUCTION_MW", "POWER_CONSUMPTION_MW")
		for _, p := range r.Summary.Power {
			t.row(strconv.Itoa(p.Index), p.RecipeID, formatRate(p.Production), formatRate(p.Consumption))
		}
		t.row("", "total", formatRate(r.Summary.TotalPowerProduction), formatRate(r.Summary.TotalPowerConsumption))
		if err := t.flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nnet power: %s MW\n", formatRate(r.Summary.NetPower))
	}
	return nil
}
