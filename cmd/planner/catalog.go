package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
)

var catalogKinds = []string{kindItems, kindMachines, kindRecipes}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"o"},
		Value:   string(FormatTable),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", supportedFormats),
	}
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:      "catalog",
		Usage:     "List catalog items, machines or recipes",
		ArgsUsage: "[items|machines|recipes]",
		Flags: []cli.Flag{
			formatFlag(),
			&cli.StringFlag{
				Name:  "machine",
				Usage: "Only recipes made in this machine",
			},
			&cli.StringFlag{
				Name:  "produces",
				Usage: "Only recipes producing this item",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseFormat(cmd.String(flagFormat))
			if err != nil {
				return err
			}

			kind := kindRecipes
			if cmd.Args().Present() {
				kind = cmd.Args().First()
			}

			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			switch kind {
			case kindItems:
				items := cat.Items()
				if format != FormatTable {
					return writeStructured(out, format, items)
				}
				t := newTable(out, "ID", "NAME", "ORDER")
				for _, it := range items {
					t.row(it.ID, it.Name, strconv.Itoa(it.TopographicOrder))
				}
				return t.flush()

			case kindMachines:
				machines := cat.Machines()
				if format != FormatTable {
					return writeStructured(out, format, machines)
				}
				t := newTable(out, "ID", "NAME", "CONSUMPTION_MW", "PRODUCTION_MW")
				for _, m := range machines {
					t.row(m.ID, m.Name, formatRate(m.BasePowerConsumption), formatRate(m.BasePowerProduction))
				}
				return t.flush()

			case kindRecipes:
				recipes := cat.FindRecipes(catalog.RecipeFilter{
					MachineID: cmd.String("machine"),
					Produces:  cmd.String("produces"),
				})
				if format != FormatTable {
					return writeStructured(out, format, recipes)
				}
				t := newTable(out, "ID", "NAME", "MACHINE", "ALTERNATE")
				for _, r := range recipes {
					t.row(r.ID, r.Name, r.Machine.ID, strconv.FormatBool(r.Alternate))
				}
				return t.flush()

			default:
				return fmt.Errorf(errFmtUnknownKind, kind, catalogKinds)
			}
		},
	}
}
