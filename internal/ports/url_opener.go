package ports

// URLOpener hands a fully built URL to the system browser (or any other
// sink, such as stdout for --print).
type URLOpener interface {
	Open(url string) error
}
