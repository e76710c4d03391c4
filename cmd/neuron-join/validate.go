package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/neuron-join/errors"
	"github.com/neuronlabs/neuron-join/errors/class"
	"github.com/neuronlabs/neuron-join/internal/schema"
	"github.com/neuronlabs/neuron-join/mapping"
	"github.com/neuronlabs/neuron-join/query"
)

func newValidateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validates the schema and checks if its relations could be joined",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, o)
		},
	}
}

func runValidate(cmd *cobra.Command, o *options) error {
	mapOptions, err := o.mapOptions()
	if err != nil {
		return err
	}
	mm, err := schema.LoadModelMap(o.schema, mapOptions...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	var failures errors.MultiError
	for _, model := range mm.Models() {
		fmt.Fprintf(w, "%s\ttable: %s\tprimary key: %s\tsoft deletes: %v\n", model.Name(), model.Table(), model.PrimaryKey(), model.SoftDeletes())
		for _, relation := range model.Relationships() {
			status := "ok"
			if err := checkRelation(o, model, relation); err != nil {
				failures = append(failures, err)
				status = err.Error()
			}
			fmt.Fprintf(w, "  %s\t%s -> %s\tforeign key: %s\t%s\n", relation.Name(), relation.Kind(), relation.Struct().Name(), relation.ForeignKey(), status)
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = failures.ErrorOrNil(); err != nil {
		e := errors.NewDetf(class.ModelSchemaInvalid, "%d relation(s) can't be joined", len(failures))
		e.Cause = err
		return e
	}
	return nil
}

// checkRelation compiles the join of the single 'relation' of the 'model'.
// The has-many and many-to-many relations are only listed, they are never joined.
func checkRelation(o *options, model *mapping.ModelStruct, relation *mapping.Relationship) error {
	switch relation.Kind() {
	case mapping.RelHasMany, mapping.RelMany2Many:
		return nil
	}
	b := query.New(model, query.WithConfig(o.cfg))
	return b.JoinOnly(relation.Name() + "." + relation.Struct().PrimaryKey())
}
