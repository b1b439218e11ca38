package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
)

// PowerReport is the power figure of a single recipe instance
type PowerReport struct {
	RecipeID     string  `json:"recipe_id"`
	Machine      string  `json:"machine"`
	ClockSpeed   float64 `json:"clock_speed"`
	MachineCount int     `json:"machine_count"`
	Production   float64 `json:"power_production"`
	Consumption  float64 `json:"power_consumption"`
}

func powerCmd() *cli.Command {
	return &cli.Command{
		Name:  "power",
		Usage: "Show the power figures of a recipe at a clock speed and machine count",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagRecipe,
				Aliases:  []string{"r"},
				Usage:    "Recipe ID (e.g. recipe_iron_ingot)",
				Required: true,
			},
			&cli.FloatFlag{
				Name:  flagClock,
				Value: domain.DefaultClockSpeed,
				Usage: "Clock speed in percent (0, 250]",
			},
			&cli.IntFlag{
				Name:  flagMachines,
				Value: domain.DefaultMachineCount,
				Usage: "Number of machines",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseFormat(cmd.String(flagFormat))
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			recipeID := cmd.String(flagRecipe)
			recipe, ok := cat.Recipe(recipeID)
			if !ok {
				return fmt.Errorf(errFmtUnknownRecipe, domain.ErrRecipeNotFound, recipeID)
			}

			ri := domain.NewRecipeInstance(recipe)
			if err := ri.SetClockSpeed(cmd.Float(flagClock)); err != nil {
				return err
			}
			if err := ri.SetMachineCount(cmd.Int(flagMachines)); err != nil {
				return err
			}

			report := PowerReport{
				RecipeID:     ri.ID,
				Machine:      ri.Machine.ID,
				ClockSpeed:   ri.ClockSpeed,
				MachineCount: ri.MachineCount,
				Production:   production.PowerProduction(ri),
				Consumption:  production.PowerConsumption(ri),
			}

			out := cmd.Root().Writer
			if format != FormatTable {
				return writeStructured(out, format, report)
			}
			t := newTable(out, "RECIPE", "MACHINE", "CLOCK", "MACHINES", "PRODUCTION_MW", "CONSUMPTION_MW")
			t.row(report.RecipeID, report.Machine, formatRate(report.ClockSpeed), fmt.Sprint(report.MachineCount),
				formatRate(report.Production), formatRate(report.Consumption))
			return t.flush()
		},
	}
}
