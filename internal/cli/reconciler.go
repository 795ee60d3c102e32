package cli

import (
	"github.com/arthur-debert/filestate/pkg/config"
	"github.com/arthur-debert/filestate/pkg/filesystem"
	"github.com/arthur-debert/filestate/pkg/reconcile"
	"github.com/arthur-debert/filestate/pkg/synthfs"
	"github.com/arthur-debert/filestate/pkg/types"
)

// newReconciler builds a reconciler on the OS filesystem with the writer
// selected by write.backend and write.atomic.
func newReconciler(cfg *config.Config) *reconcile.Reconciler {
	fsys := filesystem.NewOS()
	return reconcile.New(reconcile.Options{
		FS:     fsys,
		Writer: newWriter(cfg, fsys),
	})
}

func newWriter(cfg *config.Config, fsys types.FS) reconcile.Writer {
	switch {
	case cfg.Write.Backend == config.BackendSynthfs:
		return synthfs.NewExecutor(cfg.Write.Mode)
	case cfg.Write.Atomic:
		return reconcile.NewAtomicWriter(fsys, cfg.Write.Mode)
	default:
		return reconcile.NewDirectWriter(fsys, cfg.Write.Mode)
	}
}
