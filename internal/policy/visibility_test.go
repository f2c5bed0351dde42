package policy

import "testing"

func TestCanViewStudent(t *testing.T) {
	s := StudentOwners{ParentID: 10, AMTherapistID: 20, PMTherapistID: 21, BCBAID: 22}
	noBCBA := StudentOwners{ParentID: 10, AMTherapistID: 20, PMTherapistID: 20}

	tests := []struct {
		name string
		req  Requester
		s    StudentOwners
		want bool
	}{
		{name: "admin always allowed", req: Requester{ID: 1, Role: RoleAdmin}, s: s, want: true},
		{name: "am therapist", req: Requester{ID: 20, Role: RoleTherapist}, s: s, want: true},
		{name: "pm therapist", req: Requester{ID: 21, Role: RoleTherapist}, s: s, want: true},
		{name: "bcba only still allowed", req: Requester{ID: 22, Role: RoleTherapist}, s: s, want: true},
		{name: "unassigned therapist denied", req: Requester{ID: 23, Role: RoleTherapist}, s: s, want: false},
		{name: "therapist never matches empty bcba", req: Requester{ID: 0, Role: RoleTherapist}, s: noBCBA, want: false},
		{name: "same person am and pm", req: Requester{ID: 20, Role: RoleTherapist}, s: noBCBA, want: true},
		{name: "own parent", req: Requester{ID: 10, Role: RoleParent}, s: s, want: true},
		{name: "other parent denied", req: Requester{ID: 11, Role: RoleParent}, s: s, want: false},
		{name: "parent with therapist id denied", req: Requester{ID: 20, Role: RoleParent}, s: s, want: false},
		{name: "unknown role fails closed", req: Requester{ID: 10, Role: Role("AIDE")}, s: s, want: false},
		{name: "empty role fails closed", req: Requester{ID: 10}, s: s, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewStudent(tt.req, tt.s); got != tt.want {
				t.Errorf("CanViewStudent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStudentScopeFor(t *testing.T) {
	tests := []struct {
		name string
		req  Requester
		want StudentScope
	}{
		{name: "admin unrestricted", req: Requester{ID: 1, Role: RoleAdmin}, want: StudentScope{Kind: ScopeAll}},
		{name: "therapist disjunction", req: Requester{ID: 20, Role: RoleTherapist}, want: StudentScope{Kind: ScopeTherapist, UserID: 20}},
		{name: "parent filter", req: Requester{ID: 10, Role: RoleParent}, want: StudentScope{Kind: ScopeParent, UserID: 10}},
		{name: "unknown role matches nothing", req: Requester{ID: 9, Role: Role("GUEST")}, want: StudentScope{Kind: ScopeNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StudentScopeFor(tt.req); got != tt.want {
				t.Errorf("StudentScopeFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStaffDirectory(t *testing.T) {
	tests := []struct {
		name      string
		req       Requester
		requested Role
		allowed   bool
		email     bool
	}{
		{name: "admin lists therapists with email", req: Requester{ID: 1, Role: RoleAdmin}, requested: RoleTherapist, allowed: true, email: true},
		{name: "admin lists parents with email", req: Requester{ID: 1, Role: RoleAdmin}, requested: RoleParent, allowed: true, email: true},
		{name: "therapist lists therapists without email", req: Requester{ID: 20, Role: RoleTherapist}, requested: RoleTherapist, allowed: true, email: false},
		{name: "therapist cannot list parents", req: Requester{ID: 20, Role: RoleTherapist}, requested: RoleParent, allowed: false},
		{name: "therapist cannot list admins", req: Requester{ID: 20, Role: RoleTherapist}, requested: RoleAdmin, allowed: false},
		{name: "parent denied entirely", req: Requester{ID: 10, Role: RoleParent}, requested: RoleTherapist, allowed: false},
		{name: "unknown role denied", req: Requester{ID: 10, Role: Role("GUEST")}, requested: RoleTherapist, allowed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, proj := StaffDirectory(tt.req, tt.requested)
			if allowed != tt.allowed {
				t.Fatalf("StaffDirectory() allowed = %v, want %v", allowed, tt.allowed)
			}
			if allowed && proj.IncludeEmail != tt.email {
				t.Errorf("StaffDirectory() IncludeEmail = %v, want %v", proj.IncludeEmail, tt.email)
			}
		})
	}
}

func TestCanViewLog(t *testing.T) {
	s := StudentOwners{ParentID: 10, AMTherapistID: 20, PMTherapistID: 21}

	tests := []struct {
		name string
		req  Requester
		vis  LogVisibility
		want bool
	}{
		{name: "parent sees parent entry", req: Requester{ID: 10, Role: RoleParent}, vis: LogVisibilityParent, want: true},
		// owning the student is not enough for a STAFF entry
		{name: "parent blocked from staff entry", req: Requester{ID: 10, Role: RoleParent}, vis: LogVisibilityStaff, want: false},
		{name: "other parent blocked from parent entry", req: Requester{ID: 11, Role: RoleParent}, vis: LogVisibilityParent, want: false},
		{name: "therapist sees staff entry", req: Requester{ID: 20, Role: RoleTherapist}, vis: LogVisibilityStaff, want: true},
		{name: "therapist sees parent entry", req: Requester{ID: 21, Role: RoleTherapist}, vis: LogVisibilityParent, want: true},
		{name: "admin sees staff entry", req: Requester{ID: 1, Role: RoleAdmin}, vis: LogVisibilityStaff, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewLog(tt.req, s, tt.vis); got != tt.want {
				t.Errorf("CanViewLog() = %v, want %v", got, tt.want)
			}
		})
	}
}
