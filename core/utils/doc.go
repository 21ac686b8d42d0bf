// Package utils provides small helpers shared across features, such as lenient
// conversion of query values.
package utils
