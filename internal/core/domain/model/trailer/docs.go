// Package trailer implements the trailer resource aggregate.
package trailer
