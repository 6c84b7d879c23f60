// Package normalize cleans extracted subject fragments before translation.
package normalize
