//go:build !unix

package execstream

func signalName(int) string {
	return ""
}
