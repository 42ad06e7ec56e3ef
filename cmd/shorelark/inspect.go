package main

import (
	"fmt"

	"github.com/baldhumanity/shorelark-go/genetic"
	"github.com/baldhumanity/shorelark-go/simulation"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <checkpoint>",
	Short: "Print a checkpoint's generation history",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectCheckpoint,
}

func inspectCheckpoint(cmd *cobra.Command, args []string) error {
	population, err := genetic.LoadCheckpoint[*simulation.AnimalIndividual](args[0], simulation.NewAnimalIndividual, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generation: %d\n", population.Generation)
	fmt.Fprintf(out, "Individuals: %d\n", len(population.Members))
	if len(population.Members) > 0 {
		fmt.Fprintf(out, "Genes per individual: %d\n", population.Members[0].Chromosome().Len())
	}
	if best := population.Best; best != nil {
		fmt.Fprintf(out, "Best fitness: %.2f (generation %d)\n", best.Fitness, best.Generation)
	}

	if len(population.History) > 0 {
		fmt.Fprintln(out, "\n Gen |    Min |    Max |    Avg")
		fmt.Fprintln(out, "-----------------------------------")
		for _, r := range population.History {
			fmt.Fprintf(out, "%4d | %6.2f | %6.2f | %6.2f\n", r.Generation, r.MinFitness, r.MaxFitness, r.AvgFitness)
		}
	}
	return nil
}
