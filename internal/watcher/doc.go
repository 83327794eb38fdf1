// Package watcher reports filesystem changes inside one directory.
//
// The watch is not recursive: only entries directly inside the directory are
// observed. Chmod-only notifications are dropped.
//
// Example usage:
//
//	w, err := watcher.New("/evidence/inbox", logger)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	err = w.Run(ctx, func(ev watcher.Event) {
//		fmt.Println(ev)
//	})
package watcher
