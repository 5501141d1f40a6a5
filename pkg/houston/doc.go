// Package houston holds the public types shared by the houston validator,
// its checks and the command line: diagnostics and reports, the logger and
// approver interfaces, validation configuration, sentinel errors and exit
// codes.
package houston
