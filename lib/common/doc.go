// Package common holds the pieces shared by the command line and the library
// packages, currently the logger setup.
package common
