package exec

import (
	"context"

	"github.com/vanlore/qcircuit/schedule"
)

// Run drives plan to completion against backend, implementing the
// generic loop spec.md §4.6 specifies: fetch the ready batch, resolve
// and compute each instruction, save its result, mark the batch done,
// repeat until the plan is empty. ctx is checked before every batch,
// the same check-before-work idiom lvlath's flow.Dinic uses for its
// BFS/DFS phases; a cancelled context abandons the plan immediately,
// leaving the backend's store in the well-defined partially-populated
// state spec.md §7 permits a caller to discard.
func Run(ctx context.Context, plan *schedule.Plan, backend Backend) error {
	for !plan.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch := plan.FetchReady()
		done := make([]int, 0, len(batch))
		for _, instr := range batch {
			left, err := backend.LoadBlock(instr.Left)
			if err != nil {
				return err
			}
			right, err := backend.LoadBlock(instr.Right)
			if err != nil {
				return err
			}
			result, err := Kernel(instr.Kernel, left, right)
			if err != nil {
				return err
			}
			if err := backend.SaveBlock(instr.ID, result); err != nil {
				return err
			}
			done = append(done, instr.ID)
		}
		plan.SetDone(done)
	}
	return nil
}
