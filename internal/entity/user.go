package entity

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = "alumno"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	// HashedPassword stays in the row but never leaves the API.
	HashedPassword string `json:"-"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	role VARCHAR(20) NOT NULL DEFAULT 'alumno',
	hashed_password VARCHAR(255) NOT NULL
);
*/
