package downloader

// Invoker runs the external download tool for one item. The call blocks until
// the process exits; the queue dispatches it on its own goroutine, one per
// active item. An implementation returns the produced file's bare name (no
// path separators) on success.
type Invoker interface {
	Invoke(url, formatID, toolPath string) (fileName string, err error)
}

// Archiver receives the immutable snapshot of an item that reached a terminal
// state. An append failure is reported back but must never block the queue
// transition itself.
type Archiver interface {
	Archive(item DownloadItem) error
}
