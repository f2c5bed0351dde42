package policy

// StudentOwners are the relationship fields of a student that establish
// visibility. BCBAID==0 means no BCBA is assigned.
type StudentOwners struct {
	ParentID      uint64
	AMTherapistID uint64
	PMTherapistID uint64
	BCBAID        uint64
}

// CanViewStudent reports whether the requester may read the student's data
// (messages, events, logs). Admins see everything; therapists need one of the
// three staff assignments; parents need to be the parent. Unknown roles are
// denied: visibility fails closed.
func CanViewStudent(req Requester, s StudentOwners) bool {
	switch req.Role {
	case RoleAdmin:
		return true
	case RoleTherapist:
		return req.ID != 0 &&
			(s.AMTherapistID == req.ID || s.PMTherapistID == req.ID || s.BCBAID == req.ID)
	case RoleParent:
		return req.ID != 0 && s.ParentID == req.ID
	}
	return false
}

// ScopeKind classifies a roster filter.
type ScopeKind int

const (
	// ScopeNone matches no rows. Default so an unhandled role leaks nothing.
	ScopeNone ScopeKind = iota
	// ScopeAll applies no restriction.
	ScopeAll
	// ScopeTherapist matches students where UserID is the AM or PM therapist
	// or the BCBA.
	ScopeTherapist
	// ScopeParent matches students where UserID is the parent.
	ScopeParent
)

// StudentScope is the list filter for roster queries, expressed as data so the
// repository layer can translate it into WHERE clauses. Non-admin queries
// always carry an ownership filter, never a full scan.
type StudentScope struct {
	Kind   ScopeKind
	UserID uint64
}

// StudentScopeFor returns the roster filter for the requester.
func StudentScopeFor(req Requester) StudentScope {
	switch req.Role {
	case RoleAdmin:
		return StudentScope{Kind: ScopeAll}
	case RoleTherapist:
		return StudentScope{Kind: ScopeTherapist, UserID: req.ID}
	case RoleParent:
		return StudentScope{Kind: ScopeParent, UserID: req.ID}
	}
	return StudentScope{Kind: ScopeNone}
}

// Projection says which user fields a directory listing may expose.
type Projection struct {
	IncludeEmail bool
}

// StaffDirectory decides whether the requester may list users of the requested
// role, and with which projection. Admins list any role with email; therapists
// list other therapists without email; parents have no directory at all.
func StaffDirectory(req Requester, requested Role) (bool, Projection) {
	switch req.Role {
	case RoleAdmin:
		return true, Projection{IncludeEmail: true}
	case RoleTherapist:
		return requested == RoleTherapist, Projection{}
	}
	return false, Projection{}
}

// LogVisibility is the audience attribute on a daily log entry.
type LogVisibility string

const (
	LogVisibilityStaff  LogVisibility = "STAFF"
	LogVisibilityParent LogVisibility = "PARENT"
)

func (v LogVisibility) Valid() bool {
	return v == LogVisibilityStaff || v == LogVisibilityParent
}

// CanViewLog ANDs the per-student ownership check with the entry's audience:
// a parent who owns the student still cannot read STAFF entries.
func CanViewLog(req Requester, s StudentOwners, vis LogVisibility) bool {
	if !CanViewStudent(req, s) {
		return false
	}
	if req.Role == RoleParent {
		return vis == LogVisibilityParent
	}
	return true
}

// LogVisibilitiesFor returns the audiences the requester may list for a
// student they can already see.
func LogVisibilitiesFor(req Requester) []LogVisibility {
	if req.Role == RoleParent {
		return []LogVisibility{LogVisibilityParent}
	}
	return []LogVisibility{LogVisibilityStaff, LogVisibilityParent}
}
