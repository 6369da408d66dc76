// Command getsfattr prints the extended attributes of files as JSON.
//
// Usage:
//
//	getsfattr [flags] FILE...
//
// Example:
//
//	getsfattr --encoding utf8 a.txt b.txt
//	[{"file_name":"a.txt","attrs":{"user.note":"AB"}},{"file_name":"b.txt","attrs":{}}]
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
