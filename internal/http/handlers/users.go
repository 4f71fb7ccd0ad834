package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	intconfig "cobranza/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/users
func GetUsers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(username, ''),
			COALESCE(email, ''),
			COALESCE(phone, ''),
			COALESCE(role, ''),
			COALESCE(status, '')
		FROM users
		ORDER BY id DESC
	`)
	if err != nil {
		log.Println("GetUsers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron obtener los usuarios: " + err.Error()})
		return
	}
	defer rows.Close()

	users := []AuthUser{}
	for rows.Next() {
		var u AuthUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status); err != nil {
			log.Println("GetUsers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer los usuarios: " + err.Error()})
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Println("GetUsers rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer los usuarios: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id no válido"})
		return
	}

	var u AuthUser
	err = intconfig.DB.QueryRow(`
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(username, ''),
			COALESCE(email, ''),
			COALESCE(phone, ''),
			COALESCE(role, ''),
			COALESCE(status, '')
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "usuario no encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el usuario: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, u)
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id no válido"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload no válido"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE users
		SET name = ?, phone = ?, role = ?, status = ?, updated_at = NOW()
		WHERE id = ?
	`, req.Name, req.Phone, req.Role, req.Status, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo actualizar el usuario: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "usuario no encontrado"})
		return
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo procesar la contraseña"})
			return
		}
		if _, err := intconfig.DB.Exec(`UPDATE users SET password_hash = ? WHERE id = ?`, string(hash), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo actualizar la contraseña: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "usuario actualizado"})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id no válido"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo eliminar el usuario: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado"})
}
