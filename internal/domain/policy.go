package domain

// Task access policy.
//
// Admins have a read-everything / mutate-nothing view: they may read any
// task and list every user's tasks, but creating, updating, and deleting
// are member-owner operations only. Ownership is compared by user id.
//
// The role check is intentionally separate from the existence check so that
// callers can reject an admin mutation before touching storage or parsing a
// payload.

// CanCreateTask permits task creation for members only.
func CanCreateTask(actor User) error {
	if actor.Role.IsAdmin() {
		return ErrAdminsReadOnly("create")
	}
	return nil
}

// CanReadTask permits admins to read any task and members their own.
func CanReadTask(actor User, t Task) error {
	if actor.Role.IsAdmin() {
		return nil
	}
	if t.UserID != actor.ID {
		return ErrNotTaskOwner("view")
	}
	return nil
}

// CanUpdateTask permits the owning member only; admins are rejected
// regardless of which task is targeted.
func CanUpdateTask(actor User, t Task) error {
	if actor.Role.IsAdmin() {
		return ErrAdminsReadOnly("update")
	}
	if t.UserID != actor.ID {
		return ErrNotTaskOwner("update")
	}
	return nil
}

// CanDeleteTask permits the owning member only.
func CanDeleteTask(actor User, t Task) error {
	if actor.Role.IsAdmin() {
		return ErrAdminsReadOnly("delete")
	}
	if t.UserID != actor.ID {
		return ErrNotTaskOwner("delete")
	}
	return nil
}

// RejectAdminMutation is the role-only half of the update/delete checks,
// evaluated before the task is fetched.
func RejectAdminMutation(actor User, action string) error {
	if actor.Role.IsAdmin() {
		return ErrAdminsReadOnly(action)
	}
	return nil
}
