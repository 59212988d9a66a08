package signature

import "errors"

var (
	// ErrWildcardMember indicates a pattern combined a package wildcard
	// with a member signature. A wildcard selects whole classes, so it
	// cannot also target a specific member.
	ErrWildcardMember = errors.New("signature: wildcard pattern targets a specific member")
)
